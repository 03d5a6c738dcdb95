package config

import (
	"time"

	"github.com/cptaffe/tintrc/style"
)

// Unset marks a background id that has not been assigned yet. Finish
// resolves every remaining Unset id.
const Unset = -1

// MonitorAll selects every monitor.
const MonitorAll = -1

// Item tags used in Items.Order.
const (
	ItemTaskbar   = 'T'
	ItemLauncher  = 'L'
	ItemSystray   = 'S'
	ItemBattery   = 'B'
	ItemClock     = 'C'
	ItemSeparator = ':'
	ItemExecp     = 'E'
	ItemButton    = 'P'
	ItemFreeSpace = 'F'
)

// Config is the resolved panel configuration.
//
// Backgrounds and Gradients are id-addressed tables; every *BackgroundID
// field is a valid index into Backgrounds once parsing has finished.
type Config struct {
	Panel    Panel
	Items    Items
	Autohide Autohide
	Mouse    Mouse

	Backgrounds []style.Background
	Gradients   []style.Gradient

	Separators []Separator
	Execps     []Execp
	Buttons    []Button

	Battery  Battery
	Clock    Clock
	Taskbar  Taskbar
	Task     Task
	Systray  Systray
	Launcher Launcher
	Tooltip  Tooltip
}

// Items is the widget ordering and enablement state.
type Items struct {
	// Order holds one tag per widget in display order.
	Order string

	Taskbar  bool
	Launcher bool
	Systray  bool
	Battery  bool
	Clock    bool
}

// Padding is the usual tint2 padding triple.
type Padding struct {
	// Horizontal is the left and right padding.
	Horizontal int
	// Spacing is the gap between children.
	Spacing  int
	Vertical int
}

// ASB is an alpha, saturation, brightness adjustment applied to icons.
type ASB struct {
	Alpha      int
	Saturation int
	Brightness int
}

// Commands are shell commands bound to pointer events.
type Commands struct {
	Left      string
	Middle    string
	Right     string
	WheelUp   string
	WheelDown string
}

// Edge is the screen edge the panel is attached to.
type Edge int

const (
	EdgeBottom Edge = iota
	EdgeTop
	EdgeCenter
)

// Align is a horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Layer is the window stacking layer of the panel.
type Layer int

const (
	LayerBottom Layer = iota
	LayerNormal
	LayerTop
)

// StrutPolicy controls how much screen space the panel reserves.
type StrutPolicy int

const (
	StrutFollowSize StrutPolicy = iota
	StrutMinimum
	StrutNone
)

// Position places the panel on its monitor.
type Position struct {
	Edge     Edge
	Align    Align
	Vertical bool
}

type Panel struct {
	Position      Position
	Monitor       int
	Width         int
	Height        int
	WidthPercent  bool
	HeightPercent bool
	MarginX       int
	MarginY       int
	Padding       Padding
	BackgroundID  int
	Layer         Layer
	StrutPolicy   StrutPolicy
	WindowName    string

	Shrink              bool
	FontShadow          bool
	WMMenu              bool
	Dock                bool
	PivotStruts         bool
	DisableTransparency bool
	UrgentBlinks        int

	ScaleDPIRef    float64
	ScaleHeightRef float64

	Commands Commands

	MouseEffects bool
	HoverASB     ASB
	PressedASB   ASB
}

type Autohide struct {
	Enabled     bool
	ShowTimeout time.Duration
	HideTimeout time.Duration
	Height      int
}

// Action is a window action bound to a mouse button on a task.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionToggle
	ActionIconify
	ActionShade
	ActionToggleIconify
	ActionMaximizeRestore
	ActionDesktopLeft
	ActionDesktopRight
	ActionNextTask
	ActionPrevTask
)

var actionNames = map[string]Action{
	"none":             ActionNone,
	"close":            ActionClose,
	"toggle":           ActionToggle,
	"iconify":          ActionIconify,
	"shade":            ActionShade,
	"toggle_iconify":   ActionToggleIconify,
	"maximize_restore": ActionMaximizeRestore,
	"desktop_left":     ActionDesktopLeft,
	"desktop_right":    ActionDesktopRight,
	"next_task":        ActionNextTask,
	"prev_task":        ActionPrevTask,
}

type Mouse struct {
	Left       Action
	Middle     Action
	Right      Action
	ScrollUp   Action
	ScrollDown Action
}

// SeparatorStyle is the drawing style of a separator.
type SeparatorStyle int

const (
	SeparatorEmpty SeparatorStyle = iota
	SeparatorLine
	SeparatorDots
)

type Separator struct {
	Style        SeparatorStyle
	Size         int
	Color        style.Color
	Padding      Padding
	BackgroundID int
}

func newSeparator() Separator {
	return Separator{
		Style: SeparatorDots,
		Size:  3,
		Color: style.Color{Alpha: 0.9},
		Padding: Padding{
			Horizontal: 1,
			Spacing:    1,
			Vertical:   1,
		},
	}
}

// Execp is an executable-output widget.
type Execp struct {
	Name       string
	Command    string
	Interval   int
	Monitor    int
	Font       string
	FontColor  style.Color
	Padding    Padding
	IconWidth  int
	IconHeight int

	Isolate    bool
	HasIcon    bool
	Continuous int
	Markup     bool
	CacheIcon  bool
	Centered   bool

	Tooltip     string
	UserTooltip bool

	BackgroundID int
	Commands     Commands
}

func newExecp() Execp {
	return Execp{
		Monitor:   MonitorAll,
		FontColor: style.Color{R: 0xff, G: 0xff, B: 0xff, Alpha: 1},
		Markup:    true,
		CacheIcon: true,
		Centered:  true,
	}
}

// Button is a launch-button widget.
type Button struct {
	Text        string
	Tooltip     string
	Icon        string
	Font        string
	FontColor   style.Color
	Padding     Padding
	MaxIconSize int
	Centered    bool

	BackgroundID int
	Commands     Commands
}

func newButton() Button {
	return Button{
		FontColor: style.Color{R: 0xff, G: 0xff, B: 0xff, Alpha: 1},
		Centered:  true,
	}
}

type Battery struct {
	LowStatus   int
	HidePercent int
	Tooltip     bool

	Font1   string
	Font2   string
	Format1 string
	Format2 string

	FontColor    style.Color
	Padding      Padding
	BackgroundID int

	LowCommand     string
	FullCommand    string
	ACConnected    string
	ACDisconnected string
	Commands       Commands
}

type Clock struct {
	Format1         string
	Format2         string
	Timezone1       string
	Timezone2       string
	Font1           string
	Font2           string
	Tooltip         string
	TooltipTimezone string

	FontColor    style.Color
	Padding      Padding
	BackgroundID int
	Commands     Commands
}

// TaskbarMode selects single or multi desktop taskbars.
type TaskbarMode int

const (
	SingleDesktop TaskbarMode = iota
	MultiDesktop
)

// SortOrder is the task ordering inside a taskbar.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortCenter
	SortTitle
	SortApplication
	SortLRU
	SortMRU
)

// Taskbar background slots.
const (
	TaskbarNormal = iota
	TaskbarActive
)

type Taskbar struct {
	Mode      TaskbarMode
	SortOrder SortOrder
	Alignment Align
	Padding   Padding

	// Background holds the normal and active background ids.
	Background [2]int

	HideInactiveTasks         bool
	HideDifferentMonitor      bool
	HideDifferentDesktop      bool
	HideIfEmpty               bool
	AlwaysShowAllDesktopTasks bool
	DistributeSize            bool

	Name                bool
	NamePadding         Padding
	NameBackground      [2]int
	NameFont            string
	NameFontColor       style.Color
	NameActiveFontColor style.Color
}

// TaskState is the window state a task style applies to.
type TaskState int

const (
	TaskNormal TaskState = iota
	TaskActive
	TaskIconified
	TaskUrgent

	NumTaskStates
)

var taskStateNames = map[string]TaskState{
	"normal":    TaskNormal,
	"active":    TaskActive,
	"iconified": TaskIconified,
	"urgent":    TaskUrgent,
}

// StateMask records which task states were configured explicitly.
type StateMask uint8

// Has reports whether s is in m.
func (m StateMask) Has(s TaskState) bool { return m&(1<<s) != 0 }

type Task struct {
	Text          bool
	Icon          bool
	Centered      bool
	Tooltip       bool
	Thumbnail     bool
	ThumbnailSize int
	MaxWidth      int
	MaxHeight     int
	Padding       Padding
	Font          string

	FontColor  [NumTaskStates]style.Color
	ASB        [NumTaskStates]ASB
	Background [NumTaskStates]int

	FontMask       StateMask
	ASBMask        StateMask
	BackgroundMask StateMask

	// BackgroundID is the background of the task area itself; it follows
	// the normal-state background.
	BackgroundID   int
	HasContentTint bool
}

// SystraySort is the icon ordering inside the systray.
type SystraySort int

const (
	SystrayLeftToRight SystraySort = iota
	SystrayRightToLeft
	SystrayAscending
	SystrayDescending
)

type Systray struct {
	IconSize     int
	Padding      Padding
	BackgroundID int
	Sort         SystraySort
	ASB          ASB
	Monitor      int
	NameFilter   string
}

type Launcher struct {
	IconSize             int
	IconTheme            string
	IconThemeOverride    bool
	Tooltip              bool
	StartupNotifications bool
	Padding              Padding
	BackgroundID         int
	IconBackgroundID     int
	ASB                  ASB

	// Apps lists .desktop files in display order.
	Apps []string
}

type Tooltip struct {
	ShowTimeout  time.Duration
	HideTimeout  time.Duration
	PaddingX     int
	PaddingY     int
	BackgroundID int
	FontColor    style.Color
	Font         string
}

// Default returns a configuration holding the built-in defaults. The
// background and gradient tables each start with their built-in entry 0.
func Default() *Config {
	white := style.Color{R: 0xff, G: 0xff, B: 0xff, Alpha: 1}
	noASB := ASB{Alpha: 100}
	return &Config{
		Panel: Panel{
			Position:     Position{Edge: EdgeCenter, Align: AlignCenter},
			Width:        100,
			Height:       40,
			WidthPercent: true,
			Layer:        LayerBottom,
			StrutPolicy:  StrutFollowSize,
			WindowName:   "tint2",
			UrgentBlinks: 14,
			HoverASB:     ASB{Alpha: 100, Saturation: 0, Brightness: 10},
			PressedASB:   ASB{Alpha: 100, Saturation: 0, Brightness: -10},
		},
		Autohide: Autohide{Height: 5},
		Mouse: Mouse{
			Left:  ActionToggleIconify,
			Right: ActionClose,
		},
		Backgrounds: []style.Background{style.NewBackground()},
		Gradients:   []style.Gradient{{}},
		Battery: Battery{
			LowStatus:   10,
			HidePercent: 101,
			Tooltip:     true,
			FontColor:   white,
		},
		Clock: Clock{
			FontColor: white,
		},
		Taskbar: Taskbar{
			Background:          [2]int{0, Unset},
			NameBackground:      [2]int{0, Unset},
			NameFontColor:       white,
			NameActiveFontColor: white,
		},
		Task: Task{
			Text:          true,
			Icon:          true,
			Centered:      true,
			Tooltip:       true,
			ThumbnailSize: 210,
			MaxWidth:      200,
			MaxHeight:     32,
			FontColor:     [NumTaskStates]style.Color{white, white, white, white},
			ASB:           [NumTaskStates]ASB{noASB, noASB, noASB, noASB},
		},
		Systray: Systray{ASB: noASB},
		Launcher: Launcher{
			Tooltip: true,
			ASB:     noASB,
		},
		Tooltip: Tooltip{
			PaddingX:  2,
			PaddingY:  2,
			FontColor: style.Color{Alpha: 1},
		},
	}
}

// Reset restores the built-in defaults in place.
func (c *Config) Reset() {
	*c = *Default()
}

// UserBackgrounds returns the backgrounds declared by the file, without the
// built-in entry 0.
func (c *Config) UserBackgrounds() []style.Background {
	return c.Backgrounds[1:]
}

// UserGradients returns the gradients declared by the file, without the
// built-in entry 0.
func (c *Config) UserGradients() []style.Gradient {
	return c.Gradients[1:]
}
