package rowdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortRank(t *testing.T) {
	tests := []struct {
		port string
		rank int
	}{
		{"Ethernet1/1", 1001},
		{"Ethernet1/2", 1002},
		{"Ethernet1/10", 1010},
		{"Ethernet2/1", 2001},
		{"GigabitEthernet1/0/14", 1000}, // first slot/port pair wins
		{"port 7", 7},
		{"23", 23},
		{"mgmt", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rank, PortRank(tt.port), "port %q", tt.port)
	}

	assert.Less(t, PortRank("Ethernet1/2"), PortRank("Ethernet1/10"))
	assert.Less(t, PortRank("Ethernet1/10"), PortRank("Ethernet2/1"))
}

func TestCleanSwitchPort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Port-04", "4"},
		{"port-04", "4"},
		{"PORT-12", "12"},
		{"Port-0", "0"},
		{"12", "12"},
		{"007", "7"},
		{"0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanSwitchPort(tt.in), "input %q", tt.in)
	}
}

func TestAccessorFallbacks(t *testing.T) {
	assert.Equal(t, "SW1", SwitchName(Row{"switch_name": "SW1", "hostname": "ignored"}))
	assert.Equal(t, "host1", SwitchName(Row{"hostname": "host1"}))
	assert.Equal(t, "", SwitchName(Row{}))

	assert.Equal(t, "Eth1/1", PortField(Row{"eth_port": "Eth1/1", "port": "x"}))
	assert.Equal(t, "2", PortField(Row{"port": "2"}))
	assert.Equal(t, "Gi0/1", PortField(Row{"interface": "Gi0/1"}))

	assert.Equal(t, "core", TemplateName(Row{"template": "core"}))
	assert.Equal(t, "edge", TemplateName(Row{"template_name": "edge"}))
}

func TestNormalizeOrdering(t *testing.T) {
	rows := []Row{
		{"switch_name": "sw2", "eth_port": "Ethernet1/1"},
		{"switch_name": "SW1", "eth_port": "Ethernet1/10"},
		{"switch_name": "SW1", "eth_port": "Ethernet1/2"},
		{"switch_name": "SW1", "eth_port": "Ethernet2/1"},
		{"hostname": "sw1", "eth_port": "Ethernet1/1"},
	}

	out := Normalize(rows)

	assert.Len(t, out, 5)
	assert.Equal(t, "Ethernet1/1", PortField(out[0]))
	assert.Equal(t, "Ethernet1/2", PortField(out[1]))
	assert.Equal(t, "Ethernet1/10", PortField(out[2]))
	assert.Equal(t, "Ethernet2/1", PortField(out[3]))
	assert.Equal(t, "sw2", SwitchName(out[4]))
}

func TestNormalizeIsPermutationAndIdempotent(t *testing.T) {
	rows := []Row{
		{"switch_name": "B", "eth_port": "Ethernet2/4", "vlan": "10"},
		{"switch_name": "A", "eth_port": "Ethernet1/1", "vlan": "20"},
		{"switch_name": "B", "eth_port": "Ethernet1/3", "vlan": "30"},
	}

	once := Normalize(rows)
	assert.Len(t, once, 3)

	// no rows dropped or invented
	vlans := map[string]bool{}
	for _, r := range once {
		vlans[r["vlan"]] = true
	}
	assert.Len(t, vlans, 3)

	first := make([]Row, len(once))
	copy(first, once)
	twice := Normalize(once)
	assert.Equal(t, first, twice)
}

func TestNormalizeCleansSwitchPortInPlace(t *testing.T) {
	rows := []Row{
		{"switch_name": "SW1", "eth_port": "Ethernet1/1", "switch_port": "Port-04"},
	}
	out := Normalize(rows)
	assert.Equal(t, "4", out[0]["switch_port"])
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]Row{}))
}
