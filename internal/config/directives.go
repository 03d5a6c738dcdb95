package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cptaffe/tintrc/style"
)

// A directive applies one value to the configuration.
type directive func(p *Parser, v string)

// field locates the value a directive writes. It receives the parser so that
// list directives can select the current entry.
type field[T any] func(p *Parser) *T

// directives maps every exact key to its operation. Task-state keys are
// matched separately by applyTaskState.
var directives = map[string]directive{}

func init() {
	for _, group := range []map[string]directive{
		panelDirectives,
		backgroundDirectives,
		gradientDirectives,
		itemDirectives,
		batteryDirectives,
		separatorDirectives,
		execpDirectives,
		buttonDirectives,
		clockDirectives,
		taskbarDirectives,
		taskDirectives,
		systrayDirectives,
		launcherDirectives,
		tooltipDirectives,
		mouseDirectives,
		autohideDirectives,
	} {
		for k, d := range group {
			if _, dup := directives[k]; dup {
				panic("duplicate directive " + k)
			}
			directives[k] = d
		}
	}
}

func (p *Parser) int(v string) int {
	n, err := parseInt(v)
	if err != nil {
		p.errorf("invalid integer %q", v)
	}
	return n
}

func (p *Parser) float(v string) float64 {
	f, err := parseFloat(v)
	if err != nil {
		p.errorf("invalid number %q", v)
	}
	return f
}

func (p *Parser) bool(v string) bool {
	return p.int(v) != 0
}

// seconds decodes a fractional number of seconds with millisecond
// precision.
func (p *Parser) seconds(v string) time.Duration {
	return time.Duration(1000*p.float(v)) * time.Millisecond
}

func (p *Parser) color(v string, defAlpha float64) (style.Color, bool) {
	c, err := parseColor(v, defAlpha)
	if err != nil {
		p.errorf("%v", err)
		return style.Color{}, false
	}
	return c, true
}

// padding decodes "horizontal [vertical [spacing]]". zeroVertical resets
// the vertical component when it is absent instead of keeping it.
func (p *Parser) padding(v string, pad *Padding, zeroVertical bool) {
	vs := splitValues(v)
	s, _ := vs.at(0)
	pad.Horizontal = p.int(s)
	pad.Spacing = pad.Horizontal
	if s, ok := vs.at(1); ok {
		pad.Vertical = p.int(s)
	} else if zeroVertical {
		pad.Vertical = 0
	}
	if s, ok := vs.at(2); ok {
		pad.Spacing = p.int(s)
	}
}

// asb decodes "alpha saturation brightness". Missing components are 0.
func (p *Parser) asb(v string) ASB {
	vs := splitValues(v)
	var out [3]int
	for i := range out {
		if s, ok := vs.at(i); ok {
			out[i] = p.int(s)
		}
	}
	return ASB{Alpha: out[0], Saturation: out[1], Brightness: out[2]}
}

// expandTilde replaces a leading "~" with the home directory.
func (p *Parser) expandTilde(s string) string {
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s
	}
	home := p.opts.HomeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			p.warnf("cannot expand %q: %v", s, err)
			return s
		}
	}
	return filepath.Join(home, s[1:])
}

func setInt(f field[int]) directive {
	return func(p *Parser, v string) { *f(p) = p.int(v) }
}

func setFloat(f field[float64]) directive {
	return func(p *Parser, v string) { *f(p) = p.float(v) }
}

func setBool(f field[bool]) directive {
	return func(p *Parser, v string) { *f(p) = p.bool(v) }
}

// setString stores non-empty values; an empty value keeps the previous one.
func setString(f field[string]) directive {
	return func(p *Parser, v string) {
		if v != "" {
			*f(p) = v
		}
	}
}

// replaceString stores v, clearing the field when v is empty.
func replaceString(f field[string]) directive {
	return func(p *Parser, v string) { *f(p) = v }
}

func setDuration(f field[time.Duration]) directive {
	return func(p *Parser, v string) { *f(p) = p.seconds(v) }
}

func setColor(f field[style.Color], defAlpha float64) directive {
	return func(p *Parser, v string) {
		if c, ok := p.color(v, defAlpha); ok {
			*f(p) = c
		}
	}
}

func setPadding(f field[Padding]) directive {
	return func(p *Parser, v string) { p.padding(v, f(p), false) }
}

// setWidgetPadding is setPadding for execp and button entries, whose
// vertical padding resets to 0 when omitted.
func setWidgetPadding(f field[Padding]) directive {
	return func(p *Parser, v string) { p.padding(v, f(p), true) }
}

func setBackground(f field[int]) directive {
	return func(p *Parser, v string) { *f(p) = p.backgroundID(v) }
}

func setASB(f field[ASB]) directive {
	return func(p *Parser, v string) { *f(p) = p.asb(v) }
}

func setMonitor(f field[int]) directive {
	return func(p *Parser, v string) { *f(p) = p.monitor(v) }
}

// setEnum maps v through names. Unknown values select fallback.
func setEnum[T any](f field[T], names map[string]T, fallback T) directive {
	return func(p *Parser, v string) {
		e, ok := names[v]
		if !ok {
			p.errorf("invalid value %q", v)
			e = fallback
		}
		*f(p) = e
	}
}

// setKnownEnum maps v through names. Unknown values leave the field alone.
func setKnownEnum[T any](f field[T], names map[string]T) directive {
	return func(p *Parser, v string) {
		e, ok := names[v]
		if !ok {
			p.errorf("invalid value %q", v)
			return
		}
		*f(p) = e
	}
}

// commands registers the five pointer command keys under prefix.
func commands(prefix string, f field[Commands], set func(field[string]) directive) map[string]directive {
	return map[string]directive{
		prefix + "_lclick_command": set(func(p *Parser) *string { return &f(p).Left }),
		prefix + "_mclick_command": set(func(p *Parser) *string { return &f(p).Middle }),
		prefix + "_rclick_command": set(func(p *Parser) *string { return &f(p).Right }),
		prefix + "_uwheel_command": set(func(p *Parser) *string { return &f(p).WheelUp }),
		prefix + "_dwheel_command": set(func(p *Parser) *string { return &f(p).WheelDown }),
	}
}

// merge combines directive groups into one.
func merge(groups ...map[string]directive) map[string]directive {
	out := map[string]directive{}
	for _, g := range groups {
		for k, d := range g {
			out[k] = d
		}
	}
	return out
}
