package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/style"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// backdrop is what translucent colors are blended over.
var backdrop = colorful.Color{R: 0.1, G: 0.1, B: 0.1}

func preview(ctx context.Context, w io.Writer, opts config.LoadOptions) error {
	res, err := config.Load(ctx, opts)
	if err != nil {
		return err
	}
	out := renderPlain(res.Config)
	if isTerminal(w) {
		out = renderSwatches(res.Config)
	}
	_, err = io.WriteString(w, out)
	return err
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func fills(b style.Background) [style.NumStates][2]style.Color {
	return [style.NumStates][2]style.Color{
		style.Normal:  {b.Fill, b.Border.Color},
		style.Hover:   {b.FillHover, b.BorderHover},
		style.Pressed: {b.FillPressed, b.BorderPressed},
	}
}

// renderPlain lists every user background, one state per line.
func renderPlain(cfg *config.Config) string {
	var sb strings.Builder
	for i, b := range cfg.UserBackgrounds() {
		for st, c := range fills(b) {
			fmt.Fprintf(&sb, "%d %-7s fill=%s border=%s width=%d radius=%d sides=%s",
				i+1, style.State(st), c[0], c[1], b.Border.Width, b.Border.Radius, b.Border.Sides)
			if g := b.Gradients[st]; g != style.NoGradient {
				fmt.Fprintf(&sb, " gradient=%d", g)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// renderSwatches draws every user background in its three states.
func renderSwatches(cfg *config.Config) string {
	var rows []string
	for i, b := range cfg.UserBackgrounds() {
		cells := []string{fmt.Sprintf("%3d ", i+1)}
		for st, c := range fills(b) {
			label := fmt.Sprintf("%s %d%%", style.State(st), int(c[0].Alpha*100+0.5))
			cells = append(cells, swatch(c[0], c[1], b.Border, label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func swatch(fill, border style.Color, b style.Border, label string) string {
	bg := blend(fill)
	fg := "#ffffff"
	if l, _, _ := bg.Lab(); l > 0.6 {
		fg = "#000000"
	}
	s := lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Margin(0, 1, 0, 0)
	if b.Width > 0 && b.Sides != 0 {
		shape := lipgloss.NormalBorder()
		if b.Radius > 0 {
			shape = lipgloss.RoundedBorder()
		}
		s = s.Border(shape,
			b.Sides&style.SideTop != 0,
			b.Sides&style.SideRight != 0,
			b.Sides&style.SideBottom != 0,
			b.Sides&style.SideLeft != 0).
			BorderForeground(lipgloss.Color(blend(border).Hex()))
	}
	return s.Render(label)
}

// blend composites c over the backdrop by its alpha.
func blend(c style.Color) colorful.Color {
	fc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	a := c.Alpha
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return backdrop.BlendRgb(fc, a).Clamped()
}
