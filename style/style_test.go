package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#112233")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x11, G: 0x22, B: 0x33}, c)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xff, G: 0xff, B: 0xff}, c)

	_, err = ParseColor("blue")
	assert.Error(t, err)
}

func TestColorString(t *testing.T) {
	c := Color{R: 0xab, G: 0, B: 0x10, Alpha: 0.4}
	assert.Equal(t, "#ab0010", c.Hex())
	assert.Equal(t, "#ab0010 40", c.String())
}

func TestSides(t *testing.T) {
	assert.Equal(t, SideLeft|SideBottom, ParseSides("lB"))
	assert.Equal(t, AllSides, ParseSides("TBLR"))
	assert.Equal(t, Sides(0), ParseSides("none"))
	assert.Equal(t, "LB", (SideLeft | SideBottom).String())
	assert.Equal(t, "none", Sides(0).String())
}

func TestNewBackground(t *testing.T) {
	b := NewBackground()
	assert.Equal(t, AllSides, b.Border.Sides)
	for st := Normal; st < NumStates; st++ {
		assert.Equal(t, NoGradient, b.Gradients[st], st.String())
	}
	assert.False(t, b.Tinted())
	b.FillTint = 0.2
	assert.True(t, b.Tinted())
}

func TestParseGradientKind(t *testing.T) {
	k, ok := ParseGradientKind("centered")
	assert.True(t, ok)
	assert.Equal(t, Radial, k)

	k, ok = ParseGradientKind("diagonal")
	assert.False(t, ok)
	assert.Equal(t, Vertical, k)
}

func TestFormatSkipsBuiltins(t *testing.T) {
	bgs := []Background{NewBackground(), NewBackground()}
	bgs[1].Border.Radius = 4
	bgs[1].Border.Sides = SideTop
	bgs[1].Gradients[Hover] = 1
	grads := []Gradient{{}, {Kind: Horizontal, Stops: []ColorStop{{Offset: 0.5}}}}

	out := Format(bgs, grads)

	assert.Equal(t, 1, strings.Count(out, "rounded = "))
	assert.Equal(t, 1, strings.Count(out, "gradient = "))
	assert.Less(t, strings.Index(out, "gradient = horizontal"), strings.Index(out, "rounded = 4"))
	assert.Contains(t, out, "border_sides = T\n")
	assert.Contains(t, out, "gradient_id_hover = 1\n")
	assert.NotContains(t, out, "gradient_id = ")
	assert.Contains(t, out, "color_stop = 50% #000000 0\n")
}

func TestFormatSingleEntries(t *testing.T) {
	b := NewBackground()
	b.Border.Radius = 2
	out := FormatBackground(3, b)
	assert.True(t, strings.HasPrefix(out, "# Background 3\nrounded = 2\n"), out)
	assert.NotContains(t, out, "border_sides")

	out = FormatGradient(1, Gradient{Kind: Radial})
	assert.Contains(t, out, "gradient = radial\n")
}

func TestMarshalText(t *testing.T) {
	b, err := Color{R: 0xff, Alpha: 1}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000 100", string(b))

	b, err = (SideTop | SideRight).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "RT", string(b))

	b, err = Horizontal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "horizontal", string(b))
}
