package config

import (
	"regexp"
	"strings"

	"github.com/cptaffe/tintrc/style"
)

var taskbarDirectives = map[string]directive{
	"taskbar_name":                          setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.Name }),
	"taskbar_hide_inactive_tasks":           setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.HideInactiveTasks }),
	"taskbar_hide_different_monitor":        setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.HideDifferentMonitor }),
	"taskbar_hide_different_desktop":        setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.HideDifferentDesktop }),
	"taskbar_hide_if_empty":                 setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.HideIfEmpty }),
	"taskbar_always_show_all_desktop_tasks": setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.AlwaysShowAllDesktopTasks }),
	"taskbar_distribute_size":               setBool(func(p *Parser) *bool { return &p.cfg.Taskbar.DistributeSize }),

	"taskbar_mode":    setEnum(func(p *Parser) *TaskbarMode { return &p.cfg.Taskbar.Mode }, taskbarModeNames, SingleDesktop),
	"taskbar_padding": setPadding(func(p *Parser) *Padding { return &p.cfg.Taskbar.Padding }),

	"taskbar_background_id":        normalWithActive(func(p *Parser) *[2]int { return &p.cfg.Taskbar.Background }),
	"taskbar_active_background_id": setBackground(func(p *Parser) *int { return &p.cfg.Taskbar.Background[TaskbarActive] }),

	"taskbar_name_padding": func(p *Parser, v string) {
		pad := &p.cfg.Taskbar.NamePadding
		vs := splitValues(v)
		s, _ := vs.at(0)
		pad.Horizontal = p.int(s)
		pad.Spacing = pad.Horizontal
		if s, ok := vs.at(1); ok {
			pad.Vertical = p.int(s)
		}
	},
	"taskbar_name_background_id":        normalWithActive(func(p *Parser) *[2]int { return &p.cfg.Taskbar.NameBackground }),
	"taskbar_name_active_background_id": setBackground(func(p *Parser) *int { return &p.cfg.Taskbar.NameBackground[TaskbarActive] }),
	"taskbar_name_font":                 replaceString(func(p *Parser) *string { return &p.cfg.Taskbar.NameFont }),
	"taskbar_name_font_color":           setColor(func(p *Parser) *style.Color { return &p.cfg.Taskbar.NameFontColor }, 0.5),
	"taskbar_name_active_font_color":    setColor(func(p *Parser) *style.Color { return &p.cfg.Taskbar.NameActiveFontColor }, 0.5),

	"taskbar_sort_order": setEnum(func(p *Parser) *SortOrder { return &p.cfg.Taskbar.SortOrder }, sortOrderNames, SortNone),
	"task_align":         setEnum(func(p *Parser) *Align { return &p.cfg.Taskbar.Alignment }, alignNames, AlignLeft),
}

// normalWithActive sets the normal background of a pair and copies it to
// the active slot if that has not been set yet.
func normalWithActive(f field[[2]int]) directive {
	return func(p *Parser, v string) {
		pair := f(p)
		pair[TaskbarNormal] = p.backgroundID(v)
		if pair[TaskbarActive] == Unset {
			pair[TaskbarActive] = pair[TaskbarNormal]
		}
	}
}

var taskDirectives = map[string]directive{
	"task_text":           setBool(func(p *Parser) *bool { return &p.cfg.Task.Text }),
	"task_icon":           setBool(func(p *Parser) *bool { return &p.cfg.Task.Icon }),
	"task_centered":       setBool(func(p *Parser) *bool { return &p.cfg.Task.Centered }),
	"task_tooltip":        setBool(func(p *Parser) *bool { return &p.cfg.Task.Tooltip }),
	"task_thumbnail":      setBool(func(p *Parser) *bool { return &p.cfg.Task.Thumbnail }),
	"task_thumbnail_size": func(p *Parser, v string) { p.cfg.Task.ThumbnailSize = max(8, p.int(v)) },

	// task_width predates task_maximum_size.
	"task_width": func(p *Parser, v string) {
		p.cfg.Task.MaxWidth = p.int(v)
		p.cfg.Task.MaxHeight = 30
	},
	"task_maximum_size": func(p *Parser, v string) {
		t := &p.cfg.Task
		vs := splitValues(v)
		s, _ := vs.at(0)
		t.MaxWidth = p.int(s)
		t.MaxHeight = t.MaxWidth
		if s, ok := vs.at(1); ok {
			t.MaxHeight = p.int(s)
		}
	},
	"task_padding": setPadding(func(p *Parser) *Padding { return &p.cfg.Task.Padding }),
	"task_font":    replaceString(func(p *Parser) *string { return &p.cfg.Task.Font }),
}

// Task-state keys embed an optional state name: task_font_color,
// task_active_font_color, task_urgent_background_id and so on.
var (
	taskFontColor  = regexp.MustCompile(`^task.*_font_color$`)
	taskIconASB    = regexp.MustCompile(`^task.*_icon_asb$`)
	taskBackground = regexp.MustCompile(`^task.*_background_id$`)
)

// applyTaskState handles the task-state key family. It reports whether key
// belongs to the family, even when the state name is unknown.
func (p *Parser) applyTaskState(key, v string) bool {
	var apply func(st TaskState)
	switch {
	case taskFontColor.MatchString(key):
		apply = func(st TaskState) {
			c, ok := p.color(v, 1)
			if !ok {
				return
			}
			p.cfg.Task.FontColor[st] = c
			p.cfg.Task.FontMask |= 1 << st
		}
	case taskIconASB.MatchString(key):
		apply = func(st TaskState) {
			p.cfg.Task.ASB[st] = p.asb(v)
			p.cfg.Task.ASBMask |= 1 << st
		}
	case taskBackground.MatchString(key):
		apply = func(st TaskState) {
			t := &p.cfg.Task
			t.Background[st] = p.backgroundID(v)
			t.BackgroundMask |= 1 << st
			if st == TaskNormal {
				t.BackgroundID = t.Background[TaskNormal]
			}
			if p.cfg.Backgrounds[t.Background[st]].Tinted() {
				t.HasContentTint = true
			}
		}
	default:
		return false
	}

	st, ok := taskStateOf(key)
	if !ok {
		p.errorf("unknown task state in %q", key)
		return true
	}
	apply(st)
	return true
}

// taskStateOf extracts the state from a task-state key. Keys of three
// words carry no state and mean the normal state.
func taskStateOf(key string) (TaskState, bool) {
	parts := strings.Split(key, "_")
	if len(parts) == 3 {
		return TaskNormal, true
	}
	st, ok := taskStateNames[parts[1]]
	return st, ok
}
