package model

import "time"

// Snapshot is the whole-store export format: every template, version and
// metadata value, portable across the supported database drivers.
type Snapshot struct {
	ExportedAt    time.Time         `json:"exported_at"`
	Templates     []Template        `json:"templates"`
	Versions      []TemplateVersion `json:"versions"`
	HostTypes     []HostType        `json:"host_types"`
	PortTypes     []PortType        `json:"port_types"`
	SwitchOSTypes []SwitchOSType    `json:"switch_os_types"`
}
