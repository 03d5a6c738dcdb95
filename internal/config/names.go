package config

import "fmt"

// Directive spellings of the enumerations. Each table is also used to
// encode the value in dumps.
var (
	edgeNames = map[string]Edge{
		"bottom": EdgeBottom,
		"top":    EdgeTop,
		"center": EdgeCenter,
	}
	alignNames = map[string]Align{
		"left":   AlignLeft,
		"center": AlignCenter,
		"right":  AlignRight,
	}
	layerNames = map[string]Layer{
		"bottom": LayerBottom,
		"normal": LayerNormal,
		"top":    LayerTop,
	}
	strutNames = map[string]StrutPolicy{
		"follow_size": StrutFollowSize,
		"minimum":     StrutMinimum,
		"none":        StrutNone,
	}
	separatorStyleNames = map[string]SeparatorStyle{
		"empty": SeparatorEmpty,
		"line":  SeparatorLine,
		"dots":  SeparatorDots,
	}
	taskbarModeNames = map[string]TaskbarMode{
		"single_desktop": SingleDesktop,
		"multi_desktop":  MultiDesktop,
	}
	sortOrderNames = map[string]SortOrder{
		"none":        SortNone,
		"center":      SortCenter,
		"title":       SortTitle,
		"application": SortApplication,
		"lru":         SortLRU,
		"mru":         SortMRU,
	}
	systraySortNames = map[string]SystraySort{
		"left2right": SystrayLeftToRight,
		"right2left": SystrayRightToLeft,
		"ascending":  SystrayAscending,
		"descending": SystrayDescending,
	}
)

func nameOf[T comparable](names map[string]T, v T) string {
	for name, e := range names {
		if e == v {
			return name
		}
	}
	return fmt.Sprintf("%T(%d)", v, any(v))
}

func textOf[T comparable](names map[string]T, v T) ([]byte, error) {
	return []byte(nameOf(names, v)), nil
}

func (e Edge) String() string { return nameOf(edgeNames, e) }
func (e Edge) MarshalText() ([]byte, error) { return textOf(edgeNames, e) }
func (a Align) String() string { return nameOf(alignNames, a) }
func (a Align) MarshalText() ([]byte, error) { return textOf(alignNames, a) }
func (l Layer) String() string { return nameOf(layerNames, l) }
func (l Layer) MarshalText() ([]byte, error) { return textOf(layerNames, l) }
func (a Action) String() string { return nameOf(actionNames, a) }
func (a Action) MarshalText() ([]byte, error) { return textOf(actionNames, a) }
func (s TaskState) String() string { return nameOf(taskStateNames, s) }
func (m TaskbarMode) String() string { return nameOf(taskbarModeNames, m) }
func (o SortOrder) String() string { return nameOf(sortOrderNames, o) }
func (s SystraySort) String() string { return nameOf(systraySortNames, s) }
func (s StrutPolicy) String() string { return nameOf(strutNames, s) }
func (s SeparatorStyle) String() string { return nameOf(separatorStyleNames, s) }

func (s StrutPolicy) MarshalText() ([]byte, error) { return textOf(strutNames, s) }
func (s SeparatorStyle) MarshalText() ([]byte, error) { return textOf(separatorStyleNames, s) }
func (m TaskbarMode) MarshalText() ([]byte, error) { return textOf(taskbarModeNames, m) }
func (o SortOrder) MarshalText() ([]byte, error) { return textOf(sortOrderNames, o) }
func (s SystraySort) MarshalText() ([]byte, error) { return textOf(systraySortNames, s) }
