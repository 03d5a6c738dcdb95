package config

import (
	"strings"

	"github.com/cptaffe/tintrc/style"
)

// backgroundDirectives build the background palette. "rounded" opens a new
// entry; every other key edits the newest one.
var backgroundDirectives = map[string]directive{
	"rounded": func(p *Parser, v string) {
		bg := startNew(&p.cfg.Backgrounds, p.openBackground)
		bg.Border.Radius = p.int(v)
	},
	"border_width": func(p *Parser, v string) {
		p.background().Border.Width = p.int(v)
	},
	"border_sides": func(p *Parser, v string) {
		bg := p.background()
		bg.Border.Sides = style.ParseSides(v)
		if bg.Border.Sides == 0 {
			bg.Border.Width = 0
		}
	},

	"background_color": setColor(func(p *Parser) *style.Color { return &p.background().Fill }, 0.5),
	"border_color":     setColor(func(p *Parser) *style.Color { return &p.background().Border.Color }, 0.5),
	"background_color_hover": stateColor(func(p *Parser) (*style.Color, *bool) {
		return &p.background().FillHover, &p.fillHoverSet
	}),
	"border_color_hover": stateColor(func(p *Parser) (*style.Color, *bool) {
		return &p.background().BorderHover, &p.borderHoverSet
	}),
	"background_color_pressed": stateColor(func(p *Parser) (*style.Color, *bool) {
		return &p.background().FillPressed, &p.fillPressedSet
	}),
	"border_color_pressed": stateColor(func(p *Parser) (*style.Color, *bool) {
		return &p.background().BorderPressed, &p.borderPressedSet
	}),

	"gradient_id":         backgroundGradient(style.Normal),
	"gradient_id_hover":   backgroundGradient(style.Hover),
	"hover_gradient_id":   backgroundGradient(style.Hover),
	"gradient_id_pressed": backgroundGradient(style.Pressed),
	"pressed_gradient_id": backgroundGradient(style.Pressed),

	"border_content_tint_weight": func(p *Parser, v string) {
		p.background().BorderTint = clamp(float64(p.int(v))/100, 0, 1)
	},
	"background_content_tint_weight": func(p *Parser, v string) {
		p.background().FillTint = clamp(float64(p.int(v))/100, 0, 1)
	},
}

// stateColor sets a hover or pressed color and marks it explicit so the
// cascade leaves it alone.
func stateColor(f func(p *Parser) (*style.Color, *bool)) directive {
	return func(p *Parser, v string) {
		c, ok := p.color(v, 0.5)
		if !ok {
			return
		}
		dst, set := f(p)
		*dst = c
		*set = true
	}
}

func backgroundGradient(st style.State) directive {
	return func(p *Parser, v string) {
		bg := p.background()
		if id, ok := p.gradientID(v); ok {
			bg.Gradients[st] = id
		}
	}
}

var gradientDirectives = map[string]directive{
	"gradient": func(p *Parser, v string) {
		kind, ok := style.ParseGradientKind(v)
		if !ok {
			p.errorf("invalid gradient type %q", v)
		}
		startNew(&p.cfg.Gradients, func() style.Gradient { return style.Gradient{Kind: kind} })
	},
	"start_color": setColor(func(p *Parser) *style.Color { return &p.gradient().Start }, 0.5),
	"end_color":   setColor(func(p *Parser) *style.Color { return &p.gradient().End }, 0.5),
	"color_stop": func(p *Parser, v string) {
		g := p.gradient()
		vs := splitValues(v)
		off, _ := vs.at(0)
		rest := vs[min(1, len(vs)):]
		c, ok := p.color(strings.Join(rest, " "), 0.5)
		if !ok {
			return
		}
		g.Stops = append(g.Stops, style.ColorStop{
			Offset: p.float(off) / 100,
			Color:  c,
		})
	},
}
