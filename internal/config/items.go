package config

import "strings"

// Widget ordering has two mutually exclusive forms. Modern files carry one
// explicit order directive that replaces the order and recomputes the enable
// flags. Legacy files enable widgets one directive at a time, each
// appending its tag. The first explicit order directive locks the parse
// into the modern form for the rest of the file.

var itemDirectives = map[string]directive{
	"panel_items":       (*Parser).itemOrder,
	"panel_items_order": (*Parser).itemOrder,

	"systray": func(p *Parser, v string) {
		p.legacyItem(ItemSystray, &p.cfg.Items.Systray, p.bool(v))
	},
	"battery": func(p *Parser, v string) {
		p.legacyItem(ItemBattery, &p.cfg.Items.Battery, p.bool(v))
	},
}

// itemOrder applies an explicit order. Flags are recomputed for the
// families with a single instance; the systray stays off in snapshot mode.
func (p *Parser) itemOrder(v string) {
	p.explicitOrder = true
	it := &p.cfg.Items
	it.Order = v
	it.Taskbar = strings.ContainsRune(v, ItemTaskbar)
	it.Launcher = strings.ContainsRune(v, ItemLauncher)
	it.Battery = strings.ContainsRune(v, ItemBattery)
	it.Clock = strings.ContainsRune(v, ItemClock)
	it.Systray = strings.ContainsRune(v, ItemSystray) && p.opts.SnapshotPath == ""
}

// legacyItem handles a legacy boolean enable directive. In modern mode only
// the flag changes. In legacy mode the tag follows the flag, so disabling a
// widget takes it out of the order again.
func (p *Parser) legacyItem(tag rune, flag *bool, on bool) {
	*flag = on
	if p.explicitOrder {
		return
	}
	if on {
		p.appendItem(tag)
	} else {
		p.cfg.Items.Order = strings.ReplaceAll(p.cfg.Items.Order, string(tag), "")
	}
}

// appendItem adds tag to the legacy order unless it is already there.
func (p *Parser) appendItem(tag rune) {
	if !strings.ContainsRune(p.cfg.Items.Order, tag) {
		p.cfg.Items.Order += string(tag)
	}
}

// finishItems synthesizes the legacy order: the taskbar is always enabled
// and comes first.
func (p *Parser) finishItems() {
	if p.explicitOrder {
		return
	}
	it := &p.cfg.Items
	it.Taskbar = true
	it.Order = string(ItemTaskbar) + strings.ReplaceAll(it.Order, string(ItemTaskbar), "")
}
