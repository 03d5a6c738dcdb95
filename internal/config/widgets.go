package config

import (
	"github.com/cptaffe/tintrc/style"
)

const maxExecpName = 20

var batteryDirectives = merge(map[string]directive{
	"battery_low_status": func(p *Parser, v string) {
		n := p.int(v)
		if n < 0 || n > 100 {
			p.warnf("battery_low_status %d out of range [0, 100]", n)
			n = 0
		}
		p.cfg.Battery.LowStatus = n
	},
	"battery_low_command":  setString(func(p *Parser) *string { return &p.cfg.Battery.LowCommand }),
	"battery_full_command": setString(func(p *Parser) *string { return &p.cfg.Battery.FullCommand }),
	"ac_connected_cmd":     setString(func(p *Parser) *string { return &p.cfg.Battery.ACConnected }),
	"ac_disconnected_cmd":  setString(func(p *Parser) *string { return &p.cfg.Battery.ACDisconnected }),

	"bat1_font":   replaceString(func(p *Parser) *string { return &p.cfg.Battery.Font1 }),
	"bat2_font":   replaceString(func(p *Parser) *string { return &p.cfg.Battery.Font2 }),
	"bat1_format": batteryFormat(func(p *Parser) *string { return &p.cfg.Battery.Format1 }),
	"bat2_format": batteryFormat(func(p *Parser) *string { return &p.cfg.Battery.Format2 }),

	"battery_font_color":    setColor(func(p *Parser) *style.Color { return &p.cfg.Battery.FontColor }, 0.5),
	"battery_padding":       setPadding(func(p *Parser) *Padding { return &p.cfg.Battery.Padding }),
	"battery_background_id": setBackground(func(p *Parser) *int { return &p.cfg.Battery.BackgroundID }),
	"battery_hide": func(p *Parser, v string) {
		n := p.int(v)
		if n == 0 {
			n = 101
		}
		p.cfg.Battery.HidePercent = n
	},
	"battery_tooltip": setBool(func(p *Parser) *bool { return &p.cfg.Battery.Tooltip }),
}, commands("battery", func(p *Parser) *Commands { return &p.cfg.Battery.Commands }, setString))

// batteryFormat stores a non-empty format and enables the battery.
func batteryFormat(f field[string]) directive {
	return func(p *Parser, v string) {
		if v == "" {
			return
		}
		*f(p) = v
		p.legacyItem(ItemBattery, &p.cfg.Items.Battery, true)
	}
}

var clockDirectives = merge(map[string]directive{
	"time1_format": func(p *Parser, v string) {
		if !p.explicitOrder {
			p.legacyItem(ItemClock, &p.cfg.Items.Clock, true)
		}
		if v != "" {
			p.cfg.Clock.Format1 = v
		}
	},
	"time2_format":           setString(func(p *Parser) *string { return &p.cfg.Clock.Format2 }),
	"time1_timezone":         setString(func(p *Parser) *string { return &p.cfg.Clock.Timezone1 }),
	"time2_timezone":         setString(func(p *Parser) *string { return &p.cfg.Clock.Timezone2 }),
	"time1_font":             replaceString(func(p *Parser) *string { return &p.cfg.Clock.Font1 }),
	"time2_font":             replaceString(func(p *Parser) *string { return &p.cfg.Clock.Font2 }),
	"clock_tooltip":          setString(func(p *Parser) *string { return &p.cfg.Clock.Tooltip }),
	"clock_tooltip_timezone": setString(func(p *Parser) *string { return &p.cfg.Clock.TooltipTimezone }),
	"clock_font_color":       setColor(func(p *Parser) *style.Color { return &p.cfg.Clock.FontColor }, 0.5),
	"clock_padding":          setPadding(func(p *Parser) *Padding { return &p.cfg.Clock.Padding }),
	"clock_background_id":    setBackground(func(p *Parser) *int { return &p.cfg.Clock.BackgroundID }),
}, commands("clock", func(p *Parser) *Commands { return &p.cfg.Clock.Commands }, setString))

var separatorDirectives = map[string]directive{
	"separator": func(p *Parser, _ string) {
		startNew(&p.cfg.Separators, newSeparator)
	},
	"separator_size":          setInt(func(p *Parser) *int { return &p.separator().Size }),
	"separator_background_id": setBackground(func(p *Parser) *int { return &p.separator().BackgroundID }),
	"separator_color":         setColor(func(p *Parser) *style.Color { return &p.separator().Color }, 0.5),
	"separator_style":         setKnownEnum(func(p *Parser) *SeparatorStyle { return &p.separator().Style }, separatorStyleNames),
	"separator_padding":       setPadding(func(p *Parser) *Padding { return &p.separator().Padding }),
}

var execpDirectives = merge(map[string]directive{
	"execp": func(p *Parser, _ string) {
		startNew(&p.cfg.Execps, newExecp)
	},
	"execp_name": func(p *Parser, v string) {
		e := p.execp()
		e.Name = ""
		if len(v) > maxExecpName {
			p.errorf("execp_name cannot be more than %d bytes: %q", maxExecpName, v)
			return
		}
		e.Name = v
	},
	"execp_command":  replaceString(func(p *Parser) *string { return &p.execp().Command }),
	"execp_interval": nonNegative(func(p *Parser) *int { return &p.execp().Interval }, true),
	"execp_monitor":  setMonitor(func(p *Parser) *int { return &p.execp().Monitor }),
	"execp_font":     replaceString(func(p *Parser) *string { return &p.execp().Font }),
	"execp_font_color": setColor(func(p *Parser) *style.Color {
		return &p.execp().FontColor
	}, 0.5),
	"execp_padding":       setWidgetPadding(func(p *Parser) *Padding { return &p.execp().Padding }),
	"execp_background_id": setBackground(func(p *Parser) *int { return &p.execp().BackgroundID }),
	"execp_icon_w":        nonNegative(func(p *Parser) *int { return &p.execp().IconWidth }, false),
	"execp_icon_h":        nonNegative(func(p *Parser) *int { return &p.execp().IconHeight }, false),

	"execp_isolate":    setBool(func(p *Parser) *bool { return &p.execp().Isolate }),
	"execp_has_icon":   setBool(func(p *Parser) *bool { return &p.execp().HasIcon }),
	"execp_continuous": setInt(func(p *Parser) *int { return &p.execp().Continuous }),
	"execp_markup":     setBool(func(p *Parser) *bool { return &p.execp().Markup }),
	"execp_cache_icon": setBool(func(p *Parser) *bool { return &p.execp().CacheIcon }),
	"execp_centered":   setBool(func(p *Parser) *bool { return &p.execp().Centered }),
	"execp_tooltip": func(p *Parser, v string) {
		e := p.execp()
		e.Tooltip = v
		if v != "" {
			e.UserTooltip = true
		}
	},
}, commands("execp", func(p *Parser) *Commands { return &p.execp().Commands }, replaceString))

// nonNegative rejects negative values with a diagnostic. With reset the
// field is zeroed before validation, so a rejected value leaves 0 behind.
func nonNegative(f field[int], reset bool) directive {
	return func(p *Parser, v string) {
		dst := f(p)
		if reset {
			*dst = 0
		}
		n := p.int(v)
		if n < 0 {
			p.errorf("%s must be an integer >= 0", p.key)
			return
		}
		*dst = n
	}
}

var buttonDirectives = merge(map[string]directive{
	"button": func(p *Parser, _ string) {
		startNew(&p.cfg.Buttons, newButton)
	},
	"button_text":    replaceString(func(p *Parser) *string { return &p.button().Text }),
	"button_tooltip": replaceString(func(p *Parser) *string { return &p.button().Tooltip }),
	"button_icon": func(p *Parser, v string) {
		if v != "" {
			p.button().Icon = p.expandTilde(v)
		}
	},
	"button_font":       replaceString(func(p *Parser) *string { return &p.button().Font }),
	"button_font_color": setColor(func(p *Parser) *style.Color { return &p.button().FontColor }, 0.5),
	"button_padding":    setWidgetPadding(func(p *Parser) *Padding { return &p.button().Padding }),
	"button_max_icon_size": func(p *Parser, v string) {
		p.button().MaxIconSize = max(0, p.int(v))
	},
	"button_background_id": setBackground(func(p *Parser) *int { return &p.button().BackgroundID }),
	"button_centered":      setBool(func(p *Parser) *bool { return &p.button().Centered }),
}, commands("button", func(p *Parser) *Commands { return &p.button().Commands }, replaceString))
