package config

import "strconv"

// Monitor describes a connected output for monitor lookups.
type Monitor struct {
	// Names are the output names the monitor answers to, e.g. "DP-1".
	Names   []string
	Primary bool
}

// monitor decodes a monitor reference: "primary", "all", a 1-based index
// or an output name. The result is a 0-based index or MonitorAll.
func (p *Parser) monitor(v string) int {
	switch v {
	case "primary":
		for i, m := range p.opts.Monitors {
			if m.Primary {
				return i
			}
		}
		return 0
	case "all":
		return MonitorAll
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n - 1
	}
	for i, m := range p.opts.Monitors {
		for _, name := range m.Names {
			if name == v {
				return i
			}
		}
	}
	p.warnf("monitor %q not found, using all monitors", v)
	return MonitorAll
}
