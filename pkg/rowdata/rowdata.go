// Package rowdata canonicalizes spreadsheet-derived device/port rows before
// config generation: field fallback chains, port-number-aware ordering, and
// switch_port cell cleanup.
package rowdata

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Row is one spreadsheet record, column name to cell value.
type Row map[string]string

var (
	slotPortRe = regexp.MustCompile(`(\d+)/(\d+)`)
	numberRe   = regexp.MustCompile(`(\d+)`)
	portPrefix = regexp.MustCompile(`(?i)^Port-`)
)

func firstNonEmpty(r Row, keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// SwitchName reads the device name, falling back from switch_name to
// hostname.
func SwitchName(r Row) string {
	return firstNonEmpty(r, "switch_name", "hostname")
}

// PortField reads the port/interface identifier, falling back from eth_port
// to port to interface.
func PortField(r Row) string {
	return firstNonEmpty(r, "eth_port", "port", "interface")
}

// TemplateName reads the template reference, falling back from template to
// template_name.
func TemplateName(r Row) string {
	return firstNonEmpty(r, "template", "template_name")
}

// PortRank extracts a sortable rank from a port identifier. "Ethernet1/2"
// ranks as 1*1000+2 so slot order dominates port order; a bare number ranks
// as itself; anything else ranks 0.
func PortRank(port string) int {
	if m := slotPortRe.FindStringSubmatch(port); m != nil {
		slot, _ := strconv.Atoi(m[1])
		p, _ := strconv.Atoi(m[2])
		return slot*1000 + p
	}
	if m := numberRe.FindStringSubmatch(port); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// CleanSwitchPort strips a leading Port- prefix (any case) and leading
// zeros: "Port-04" becomes "4", "Port-0" becomes "0".
func CleanSwitchPort(v string) string {
	v = portPrefix.ReplaceAllString(v, "")
	trimmed := strings.TrimLeft(v, "0")
	if trimmed == "" && v != "" {
		return "0"
	}
	return trimmed
}

// Normalize cleans each row's switch_port cell in place, then stable-sorts
// the set by case-insensitive switch name and port rank. All ports of one
// device end up contiguous, in numeric interface order.
func Normalize(rows []Row) []Row {
	for _, r := range rows {
		if v, ok := r["switch_port"]; ok && v != "" {
			r["switch_port"] = CleanSwitchPort(v)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ni := strings.ToLower(SwitchName(rows[i]))
		nj := strings.ToLower(SwitchName(rows[j]))
		if ni != nj {
			return ni < nj
		}
		return PortRank(PortField(rows[i])) < PortRank(PortField(rows[j]))
	})
	return rows
}
