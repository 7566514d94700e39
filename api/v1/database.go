package v1

type ImportDatabaseResponseData struct {
	Templates int `json:"templates"`
	Versions  int `json:"versions"`
	HostTypes int `json:"host_types"`
	PortTypes int `json:"port_types"`
	SwitchOS  int `json:"switch_os_types"`
}
