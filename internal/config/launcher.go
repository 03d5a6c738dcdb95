package config

import (
	"time"

	"github.com/cptaffe/tintrc/style"
)

var systrayDirectives = map[string]directive{
	"systray_icon_size": setInt(func(p *Parser) *int { return &p.cfg.Systray.IconSize }),
	"systray_padding": func(p *Parser, v string) {
		if !p.explicitOrder && !p.cfg.Items.Systray {
			p.legacyItem(ItemSystray, &p.cfg.Items.Systray, true)
		}
		p.padding(v, &p.cfg.Systray.Padding, false)
	},
	"systray_background_id": setBackground(func(p *Parser) *int { return &p.cfg.Systray.BackgroundID }),
	"systray_sort":          setKnownEnum(func(p *Parser) *SystraySort { return &p.cfg.Systray.Sort }, systraySortNames),
	"systray_icon_asb":      setASB(func(p *Parser) *ASB { return &p.cfg.Systray.ASB }),
	"systray_monitor": func(p *Parser, v string) {
		p.cfg.Systray.Monitor = max(0, p.monitor(v))
	},
	"systray_name_filter": func(p *Parser, v string) {
		if p.cfg.Systray.NameFilter != "" {
			p.errorf("duplicate option 'systray_name_filter', please use it only once")
		}
		p.cfg.Systray.NameFilter = v
	},
}

var launcherDirectives = map[string]directive{
	"launcher_icon_size":           setInt(func(p *Parser) *int { return &p.cfg.Launcher.IconSize }),
	"launcher_icon_theme_override": setBool(func(p *Parser) *bool { return &p.cfg.Launcher.IconThemeOverride }),
	"launcher_tooltip":             setBool(func(p *Parser) *bool { return &p.cfg.Launcher.Tooltip }),
	"startup_notifications":        setBool(func(p *Parser) *bool { return &p.cfg.Launcher.StartupNotifications }),
	"launcher_padding":             setPadding(func(p *Parser) *Padding { return &p.cfg.Launcher.Padding }),
	"launcher_background_id":       setBackground(func(p *Parser) *int { return &p.cfg.Launcher.BackgroundID }),
	"launcher_icon_background_id":  setBackground(func(p *Parser) *int { return &p.cfg.Launcher.IconBackgroundID }),
	"launcher_icon_theme":          replaceString(func(p *Parser) *string { return &p.cfg.Launcher.IconTheme }),
	"launcher_icon_asb":            setASB(func(p *Parser) *ASB { return &p.cfg.Launcher.ASB }),
	"launcher_item_app": func(p *Parser, v string) {
		p.cfg.Launcher.Apps = append(p.cfg.Launcher.Apps, p.expandTilde(v))
	},
	"launcher_apps_dir": func(p *Parser, v string) {
		apps, err := appsDir(p.expandTilde(v))
		if err != nil {
			p.warnf("launcher_apps_dir: %v", err)
		}
		p.cfg.Launcher.Apps = append(p.cfg.Launcher.Apps, apps...)
	},
}

var tooltipDirectives = map[string]directive{
	"tooltip_show_timeout": setDuration(func(p *Parser) *time.Duration { return &p.cfg.Tooltip.ShowTimeout }),
	"tooltip_hide_timeout": setDuration(func(p *Parser) *time.Duration { return &p.cfg.Tooltip.HideTimeout }),
	"tooltip_padding": func(p *Parser, v string) {
		vs := splitValues(v)
		if s, ok := vs.at(0); ok {
			p.cfg.Tooltip.PaddingX = p.int(s)
		}
		if s, ok := vs.at(1); ok {
			p.cfg.Tooltip.PaddingY = p.int(s)
		}
	},
	"tooltip_background_id": setBackground(func(p *Parser) *int { return &p.cfg.Tooltip.BackgroundID }),
	"tooltip_font_color":    setColor(func(p *Parser) *style.Color { return &p.cfg.Tooltip.FontColor }, 0.1),
	"tooltip_font":          replaceString(func(p *Parser) *string { return &p.cfg.Tooltip.Font }),
}
