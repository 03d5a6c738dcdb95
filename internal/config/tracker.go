package config

import "github.com/cptaffe/tintrc/style"

// current returns the newest entry of an append-only list. When the list
// holds nothing beyond its builtin entries, a default entry is appended
// with a warning so that the directive still lands somewhere.
//
// The returned pointer is only valid until the next append to list.
func current[T any](p *Parser, list *[]T, builtin int, kind, opener string, mk func() T) *T {
	if len(*list) <= builtin {
		p.warnf("%s items should start with '%s'", kind, opener)
		*list = append(*list, mk())
	}
	return &(*list)[len(*list)-1]
}

// startNew appends a default entry to list and returns it.
func startNew[T any](list *[]T, mk func() T) *T {
	*list = append(*list, mk())
	return &(*list)[len(*list)-1]
}

func (p *Parser) background() *style.Background {
	return current(p, &p.cfg.Backgrounds, 1, "background", "rounded = <radius>", p.openBackground)
}

func (p *Parser) gradient() *style.Gradient {
	return current(p, &p.cfg.Gradients, 1, "gradient", "gradient = <type>", func() style.Gradient {
		return style.Gradient{}
	})
}

func (p *Parser) separator() *Separator {
	return current(p, &p.cfg.Separators, 0, "separator", "separator = new", newSeparator)
}

func (p *Parser) execp() *Execp {
	return current(p, &p.cfg.Execps, 0, "execp", "execp = new", newExecp)
}

func (p *Parser) button() *Button {
	return current(p, &p.cfg.Buttons, 0, "button", "button = new", newButton)
}

// openBackground returns a fresh background after running the deferred
// cascade of the previous one and clearing the explicit-state flags.
func (p *Parser) openBackground() style.Background {
	p.finalizeBackground()
	p.fillHoverSet = false
	p.borderHoverSet = false
	p.fillPressedSet = false
	p.borderPressedSet = false
	return style.NewBackground()
}

// finalizeBackground copies normal colors into hover, then hover into
// pressed, for each state the newest user background left unset.
func (p *Parser) finalizeBackground() {
	bgs := p.cfg.Backgrounds
	if len(bgs) <= 1 {
		return
	}
	bg := &bgs[len(bgs)-1]
	if !p.fillHoverSet {
		bg.FillHover = bg.Fill
	}
	if !p.borderHoverSet {
		bg.BorderHover = bg.Border.Color
	}
	if !p.fillPressedSet {
		bg.FillPressed = bg.FillHover
	}
	if !p.borderPressedSet {
		bg.BorderPressed = bg.BorderHover
	}
}
