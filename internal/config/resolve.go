package config

import "github.com/cptaffe/tintrc/style"

// clampID maps an id outside [0, n) to 0.
func clampID(id, n int) int {
	if id < 0 || id >= n {
		return 0
	}
	return id
}

// backgroundID resolves a background reference. Ids past the end of the
// palette, including ids of backgrounds declared later in the file,
// silently resolve to the built-in background 0.
func (p *Parser) backgroundID(v string) int {
	return clampID(p.int(v), len(p.cfg.Backgrounds))
}

// gradientID resolves a gradient reference. Unlike backgrounds, an unknown
// gradient id is not clamped: ok is false and the reference is dropped.
func (p *Parser) gradientID(v string) (id int, ok bool) {
	id = p.int(v)
	if id < 0 || id >= len(p.cfg.Gradients) {
		return style.NoGradient, false
	}
	return id, true
}

// resolveUnset gives every background slot still Unset after the parse a
// concrete id.
func (p *Parser) resolveUnset() {
	tb := &p.cfg.Taskbar
	for _, pair := range []*[2]int{&tb.Background, &tb.NameBackground} {
		if pair[TaskbarActive] == Unset {
			pair[TaskbarActive] = pair[TaskbarNormal]
		}
	}
}
