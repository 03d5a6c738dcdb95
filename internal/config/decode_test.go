package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cptaffe/tintrc/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitValues(t *testing.T) {
	assert.Equal(t, values{"1", "2", "3"}, splitValues("1, 2 3 4"))
	assert.Equal(t, values{"#fff", "40"}, splitValues("#fff,40"))
	assert.Empty(t, splitValues("  "))

	vs := splitValues("a")
	s, ok := vs.at(0)
	assert.True(t, ok)
	assert.Equal(t, "a", s)
	_, ok = vs.at(1)
	assert.False(t, ok)
}

func TestParseInt(t *testing.T) {
	for in, want := range map[string]int{
		"12":   12,
		" -3 ": -3,
		"40%":  40,
		"10px": 10,
		"+7":   7,
		"007":  7,
		"3.75": 3,
	} {
		n, err := parseInt(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, n, in)
	}

	n, err := parseInt("abc")
	assert.ErrorIs(t, err, errNoNumber)
	assert.Equal(t, 0, n)
}

func TestParseFloat(t *testing.T) {
	f, err := parseFloat("0.25")
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	f, err = parseFloat(".5s")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	_, err = parseFloat("")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#112233, 40", 0.5)
	require.NoError(t, err)
	assert.Equal(t, style.Color{R: 0x11, G: 0x22, B: 0x33, Alpha: 0.4}, c)

	c, err = parseColor("#112233", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.Alpha)

	c, err = parseColor("#abc 100%", 0.5)
	require.NoError(t, err)
	assert.Equal(t, style.Color{R: 0xaa, G: 0xbb, B: 0xcc, Alpha: 1}, c)

	_, err = parseColor("#112233 much", 0.5)
	assert.Error(t, err)
	_, err = parseColor("", 0.5)
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	n, pct, err := parseSize("80%")
	require.NoError(t, err)
	assert.Equal(t, 80, n)
	assert.True(t, pct)

	n, pct, err = parseSize("32")
	require.NoError(t, err)
	assert.Equal(t, 32, n)
	assert.False(t, pct)
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, naturalLess("app2", "app10"))
	assert.False(t, naturalLess("app10", "app2"))
	assert.True(t, naturalLess("a", "b"))
	assert.True(t, naturalLess("x", "x1"))
	assert.False(t, naturalLess("x01", "x1"))
	assert.False(t, naturalLess("same", "same"))
}

func TestAppsDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"app10.desktop",
		"App2.desktop",
		"readme.txt",
		"b/y.desktop",
		"a/x.desktop",
		"a/nested/deep.desktop",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	apps, err := appsDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a/nested/deep.desktop"),
		filepath.Join(dir, "a/x.desktop"),
		filepath.Join(dir, "b/y.desktop"),
		filepath.Join(dir, "App2.desktop"),
		filepath.Join(dir, "app10.desktop"),
	}, apps)

	_, err = appsDir(filepath.Join(dir, "readme.txt"))
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = appsDir(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLauncherAppsDir(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "apps"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "apps", "term.desktop"), nil, 0o644))

	cfg, diags, _ := parse(t, `
launcher_item_app = first.desktop
launcher_apps_dir = ~/apps
launcher_apps_dir = ~/missing
`, Options{HomeDir: home})
	assert.Equal(t, []string{"first.desktop", filepath.Join(home, "apps", "term.desktop")}, cfg.Launcher.Apps)
	require.Len(t, diags, 1)
	assert.Equal(t, Warning, diags[0].Severity)
}
