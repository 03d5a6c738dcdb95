package config

import "time"

var panelDirectives = merge(map[string]directive{
	"scale_relative_to_dpi":           setFloat(func(p *Parser) *float64 { return &p.cfg.Panel.ScaleDPIRef }),
	"scale_relative_to_screen_height": setFloat(func(p *Parser) *float64 { return &p.cfg.Panel.ScaleHeightRef }),

	"panel_shrink":         setBool(func(p *Parser) *bool { return &p.cfg.Panel.Shrink }),
	"font_shadow":          setBool(func(p *Parser) *bool { return &p.cfg.Panel.FontShadow }),
	"wm_menu":              setBool(func(p *Parser) *bool { return &p.cfg.Panel.WMMenu }),
	"panel_dock":           setBool(func(p *Parser) *bool { return &p.cfg.Panel.Dock }),
	"panel_pivot_struts":   setBool(func(p *Parser) *bool { return &p.cfg.Panel.PivotStruts }),
	"disable_transparency": setBool(func(p *Parser) *bool { return &p.cfg.Panel.DisableTransparency }),
	"urgent_nb_of_blink":   setInt(func(p *Parser) *int { return &p.cfg.Panel.UrgentBlinks }),

	"panel_monitor":       setMonitor(func(p *Parser) *int { return &p.cfg.Panel.Monitor }),
	"panel_size":          (*Parser).panelSize,
	"panel_margin":        (*Parser).panelMargin,
	"panel_padding":       setPadding(func(p *Parser) *Padding { return &p.cfg.Panel.Padding }),
	"panel_position":      (*Parser).panelPosition,
	"panel_background_id": setBackground(func(p *Parser) *int { return &p.cfg.Panel.BackgroundID }),
	"panel_layer":         setEnum(func(p *Parser) *Layer { return &p.cfg.Panel.Layer }, layerNames, LayerNormal),
	"panel_window_name":   setString(func(p *Parser) *string { return &p.cfg.Panel.WindowName }),

	"mouse_effects":          setBool(func(p *Parser) *bool { return &p.cfg.Panel.MouseEffects }),
	"mouse_hover_icon_asb":   setASB(func(p *Parser) *ASB { return &p.cfg.Panel.HoverASB }),
	"mouse_pressed_icon_asb": setASB(func(p *Parser) *ASB { return &p.cfg.Panel.PressedASB }),

	"primary_monitor_first": func(p *Parser, _ string) {
		p.warnf("deprecated config option %q, please see the documentation regarding the alternatives", p.key)
	},
}, commands("panel", func(p *Parser) *Commands { return &p.cfg.Panel.Commands }, setString))

var autohideDirectives = map[string]directive{
	"autohide":              setBool(func(p *Parser) *bool { return &p.cfg.Autohide.Enabled }),
	"autohide_show_timeout": setDuration(func(p *Parser) *time.Duration { return &p.cfg.Autohide.ShowTimeout }),
	"autohide_hide_timeout": setDuration(func(p *Parser) *time.Duration { return &p.cfg.Autohide.HideTimeout }),
	"autohide_height": func(p *Parser, v string) {
		h := p.int(v)
		if h == 0 {
			h = 1
		}
		p.cfg.Autohide.Height = h
	},
	"strut_policy": setEnum(func(p *Parser) *StrutPolicy { return &p.cfg.Panel.StrutPolicy }, strutNames, StrutMinimum),
}

var mouseDirectives = map[string]directive{
	"mouse_left":        setAction(func(p *Parser) *Action { return &p.cfg.Mouse.Left }),
	"mouse_middle":      setAction(func(p *Parser) *Action { return &p.cfg.Mouse.Middle }),
	"mouse_right":       setAction(func(p *Parser) *Action { return &p.cfg.Mouse.Right }),
	"mouse_scroll_up":   setAction(func(p *Parser) *Action { return &p.cfg.Mouse.ScrollUp }),
	"mouse_scroll_down": setAction(func(p *Parser) *Action { return &p.cfg.Mouse.ScrollDown }),
}

func setAction(f field[Action]) directive {
	return func(p *Parser, v string) {
		a, ok := actionNames[v]
		if !ok {
			p.errorf("unrecognized action %q, please fix your config file", v)
			return
		}
		*f(p) = a
	}
}

// panelSize decodes "width[%] [height[%]]". A width of 0 means the full
// monitor width.
func (p *Parser) panelSize(v string) {
	pn := &p.cfg.Panel
	vs := splitValues(v)
	s, _ := vs.at(0)
	w, pct, err := parseSize(s)
	if err != nil {
		p.errorf("invalid panel width %q", s)
	}
	pn.Width, pn.WidthPercent = w, pct
	if pn.Width == 0 {
		pn.Width = 100
		pn.WidthPercent = true
	}
	if s, ok := vs.at(1); ok {
		h, pct, err := parseSize(s)
		if err != nil {
			p.errorf("invalid panel height %q", s)
		}
		pn.Height, pn.HeightPercent = h, pct
	}
}

func (p *Parser) panelMargin(v string) {
	vs := splitValues(v)
	s, _ := vs.at(0)
	p.cfg.Panel.MarginX = p.int(s)
	if s, ok := vs.at(1); ok {
		p.cfg.Panel.MarginY = p.int(s)
	}
}

// panelPosition decodes "edge [alignment [orientation]]". Unknown words
// select the center; a missing orientation means horizontal.
func (p *Parser) panelPosition(v string) {
	p.positionSet = true
	pos := &p.cfg.Panel.Position
	vs := splitValues(v)

	edge, _ := vs.at(0)
	switch edge {
	case "top":
		pos.Edge = EdgeTop
	case "bottom":
		pos.Edge = EdgeBottom
	default:
		pos.Edge = EdgeCenter
	}

	align, _ := vs.at(1)
	switch align {
	case "left":
		pos.Align = AlignLeft
	case "right":
		pos.Align = AlignRight
	default:
		pos.Align = AlignCenter
	}

	orient, _ := vs.at(2)
	pos.Vertical = orient == "vertical"
}
