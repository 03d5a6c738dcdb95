// Package style defines the palette types shared by the tint2rc interpreter
// and the tools that inspect its output.
//
// Backgrounds and Gradients are append-only tables referenced elsewhere by
// integer id. Entry 0 of each table is built in; user entries start at 1.
// Format serialises both tables back into directive text that the
// interpreter accepts, so a resolved palette can be written out and read
// again without loss.
package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with a fractional alpha in [0, 1].
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// ParseColor parses "#rgb" or "#rrggbb". The alpha of the result is 0.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the "#rrggbb" form of c, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns c in directive form: "#rrggbb percent".
func (c Color) String() string {
	return fmt.Sprintf("%s %d", c.Hex(), percent(c.Alpha))
}

// MarshalText encodes c in its directive form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}

// Sides is a mask of the border sides that are drawn.
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideBottom
	SideLeft
	SideRight

	AllSides = SideTop | SideBottom | SideLeft | SideRight
)

// ParseSides builds a mask from any of the letters l, r, t and b, in either
// case. Other characters are ignored.
func ParseSides(s string) Sides {
	var m Sides
	for _, c := range strings.ToLower(s) {
		switch c {
		case 'l':
			m |= SideLeft
		case 'r':
			m |= SideRight
		case 't':
			m |= SideTop
		case 'b':
			m |= SideBottom
		}
	}
	return m
}

func (m Sides) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m Sides) String() string {
	if m == 0 {
		return "none"
	}
	var sb strings.Builder
	for _, s := range []struct {
		bit Sides
		c   byte
	}{{SideLeft, 'L'}, {SideRight, 'R'}, {SideTop, 'T'}, {SideBottom, 'B'}} {
		if m&s.bit != 0 {
			sb.WriteByte(s.c)
		}
	}
	return sb.String()
}

// Border describes the outline of a background.
type Border struct {
	Color  Color
	Width  int
	Radius int
	Sides  Sides
}

// State is a pointer interaction state.
type State int

const (
	Normal State = iota
	Hover
	Pressed

	NumStates
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Hover:
		return "hover"
	case Pressed:
		return "pressed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// NoGradient marks a background state without a gradient.
const NoGradient = -1

// Background is one entry of the background palette.
type Background struct {
	Border        Border
	Fill          Color
	FillHover     Color
	FillPressed   Color
	BorderHover   Color
	BorderPressed Color

	// Gradients holds a gradient id per State, or NoGradient.
	Gradients [NumStates]int

	// Content tint weights in [0, 1].
	BorderTint float64
	FillTint   float64
}

// NewBackground returns a transparent background with all sides enabled and
// no gradients.
func NewBackground() Background {
	return Background{
		Border:    Border{Sides: AllSides},
		Gradients: [NumStates]int{NoGradient, NoGradient, NoGradient},
	}
}

// Tinted reports whether either content tint weight is positive.
func (b Background) Tinted() bool {
	return b.BorderTint > 0 || b.FillTint > 0
}

// GradientKind is the geometry of a gradient.
type GradientKind int

const (
	Vertical GradientKind = iota
	Horizontal
	Radial
)

// ParseGradientKind maps a directive value to a GradientKind. "centered"
// is accepted as an alias for radial.
func ParseGradientKind(s string) (GradientKind, bool) {
	switch s {
	case "vertical":
		return Vertical, true
	case "horizontal":
		return Horizontal, true
	case "radial", "centered":
		return Radial, true
	}
	return Vertical, false
}

func (k GradientKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k GradientKind) String() string {
	switch k {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Radial:
		return "radial"
	}
	return fmt.Sprintf("GradientKind(%d)", int(k))
}

// ColorStop is an interior gradient stop. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// Gradient is one entry of the gradient palette.
type Gradient struct {
	Kind  GradientKind
	Start Color
	End   Color
	Stops []ColorStop
}

// Format serialises the user entries (id 1 and up) of both palettes in
// directive form. Gradients are written first so that gradient ids in the
// backgrounds resolve to the same entries when the text is parsed again.
func Format(backgrounds []Background, gradients []Gradient) string {
	var sb strings.Builder
	for i := 1; i < len(gradients); i++ {
		writeGradient(&sb, i, gradients[i])
	}
	for i := 1; i < len(backgrounds); i++ {
		writeBackground(&sb, i, backgrounds[i])
	}
	return sb.String()
}

// FormatGradient returns gradient id in directive form.
func FormatGradient(id int, g Gradient) string {
	var sb strings.Builder
	writeGradient(&sb, id, g)
	return sb.String()
}

// FormatBackground returns background id in directive form. Gradient ids
// refer to the gradient table it was parsed with.
func FormatBackground(id int, b Background) string {
	var sb strings.Builder
	writeBackground(&sb, id, b)
	return sb.String()
}

func writeGradient(sb *strings.Builder, id int, g Gradient) {
	fmt.Fprintf(sb, "# Gradient %d\n", id)
	fmt.Fprintf(sb, "gradient = %s\n", g.Kind)
	fmt.Fprintf(sb, "start_color = %s\n", g.Start)
	fmt.Fprintf(sb, "end_color = %s\n", g.End)
	for _, s := range g.Stops {
		off := strconv.FormatFloat(math.Round(s.Offset*1e6)/1e4, 'f', -1, 64)
		fmt.Fprintf(sb, "color_stop = %s%% %s\n", off, s.Color)
	}
	sb.WriteByte('\n')
}

func writeBackground(sb *strings.Builder, id int, b Background) {
	fmt.Fprintf(sb, "# Background %d\n", id)
	fmt.Fprintf(sb, "rounded = %d\n", b.Border.Radius)
	fmt.Fprintf(sb, "border_width = %d\n", b.Border.Width)
	if b.Border.Sides != AllSides {
		fmt.Fprintf(sb, "border_sides = %s\n", b.Border.Sides)
	}
	fmt.Fprintf(sb, "border_content_tint_weight = %d\n", percent(b.BorderTint))
	fmt.Fprintf(sb, "background_content_tint_weight = %d\n", percent(b.FillTint))
	fmt.Fprintf(sb, "background_color = %s\n", b.Fill)
	fmt.Fprintf(sb, "border_color = %s\n", b.Border.Color)
	for st, key := range [NumStates]string{"gradient_id", "gradient_id_hover", "gradient_id_pressed"} {
		if id := b.Gradients[st]; id != NoGradient {
			fmt.Fprintf(sb, "%s = %d\n", key, id)
		}
	}
	fmt.Fprintf(sb, "background_color_hover = %s\n", b.FillHover)
	fmt.Fprintf(sb, "border_color_hover = %s\n", b.BorderHover)
	fmt.Fprintf(sb, "background_color_pressed = %s\n", b.FillPressed)
	fmt.Fprintf(sb, "border_color_pressed = %s\n", b.BorderPressed)
	sb.WriteByte('\n')
}
