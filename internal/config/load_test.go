package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cptaffe/tintrc/style"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoadWritesEmbeddedDefault(t *testing.T) {
	home := t.TempDir()
	res, err := Load(context.Background(), LoadOptions{ConfigHome: home, ConfigDirs: []string{}})
	require.NoError(t, err)

	user := filepath.Join(home, "tint2", "tint2rc")
	assert.Equal(t, SourceEmbedded, res.Source)
	assert.Equal(t, user, res.Path)

	data, err := os.ReadFile(user)
	require.NoError(t, err)
	assert.Equal(t, DefaultRC, data)

	fi, err := os.Stat(filepath.Dir(user))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())

	cfg := res.Config
	assert.Len(t, cfg.UserBackgrounds(), 5)
	assert.Equal(t, "LTSC", cfg.Items.Order)
	assert.True(t, cfg.Items.Systray)
	assert.Equal(t, 1, cfg.Panel.BackgroundID)
	assert.Equal(t, 5, cfg.Tooltip.BackgroundID)
	assert.NotEmpty(t, cfg.Launcher.Apps)

	require.Len(t, res.Diagnostics, 1, "only the bootstrap notice")
	assert.Contains(t, res.Diagnostics[0].Message, "creating a default one")
}

func TestEmbeddedDefaultRoundTrip(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	first, err := Load(ctx, LoadOptions{ConfigHome: home, ConfigDirs: []string{}})
	require.NoError(t, err)

	second, err := Load(ctx, LoadOptions{Path: first.Path})
	require.NoError(t, err)
	assert.Equal(t, SourceExplicit, second.Source)
	assert.Empty(t, second.Diagnostics)
	assert.NoError(t, second.Err())

	if diff := cmp.Diff(first.Config, second.Config); diff != "" {
		t.Errorf("reparsed default differs (-first +second):\n%s", diff)
	}
}

func TestLoadCopiesTemplate(t *testing.T) {
	home := t.TempDir()
	empty := t.TempDir()
	sys := t.TempDir()
	tmpl := "panel_items = C\ntime1_format = %H\n"
	require.NoError(t, os.MkdirAll(filepath.Join(sys, "tint2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sys, "tint2", "tint2rc"), []byte(tmpl), 0o644))

	res, err := Load(context.Background(), LoadOptions{
		ConfigHome: home,
		ConfigDirs: []string{empty, sys},
	})
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, res.Source)

	data, err := os.ReadFile(filepath.Join(home, "tint2", "tint2rc"))
	require.NoError(t, err)
	assert.Equal(t, tmpl, string(data))
	assert.Equal(t, "C", res.Config.Items.Order)
	assert.Equal(t, "%H", res.Config.Clock.Format1)
}

func TestLoadPrefersUserFile(t *testing.T) {
	home := t.TempDir()
	user := filepath.Join(home, "tint2", "tint2rc")
	require.NoError(t, os.MkdirAll(filepath.Dir(user), 0o700))
	require.NoError(t, os.WriteFile(user, []byte("battery = 1\n"), 0o644))

	sys := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sys, "tint2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sys, "tint2", "tint2rc"), []byte("panel_items = C\n"), 0o644))

	res, err := Load(context.Background(), LoadOptions{ConfigHome: home, ConfigDirs: []string{sys}})
	require.NoError(t, err)
	assert.Equal(t, SourceUser, res.Source)
	assert.Equal(t, "TB", res.Config.Items.Order)
	assert.Empty(t, res.Diagnostics)
}

func TestLoadEnvironment(t *testing.T) {
	home := t.TempDir()
	sys := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sys, "tint2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sys, "tint2", "tint2rc"), []byte("panel_items = L\n"), 0o644))
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", "relative/ignored:"+sys)

	res, err := Load(context.Background(), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, res.Source)
	assert.Equal(t, filepath.Join(home, "tint2", "tint2rc"), res.Path)
	assert.Equal(t, "L", res.Config.Items.Order)
}

func TestLoadLongLine(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "tint2rc")
	long := strings.Repeat("x", 2<<20)
	text := "panel_items = TE\nexecp = new\nexecp_command = " + long + "\nrounded = 3\n"
	require.NoError(t, os.WriteFile(rc, []byte(text), 0o644))

	res, err := Load(context.Background(), LoadOptions{Path: rc})
	require.NoError(t, err)
	require.Len(t, res.Config.Execps, 1)
	assert.Equal(t, long, res.Config.Execps[0].Command)
	require.Len(t, res.Config.UserBackgrounds(), 1)
	assert.Equal(t, 3, res.Config.Backgrounds[1].Border.Radius)
	assert.Empty(t, res.Diagnostics)
}

func TestLoadExistingConfigDir(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "tint2")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	res, err := Load(context.Background(), LoadOptions{ConfigHome: home, ConfigDirs: []string{}})
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, res.Source)
	require.Len(t, res.Diagnostics, 1, "only the bootstrap notice")

	data, err := os.ReadFile(filepath.Join(dir, "tint2rc"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRC, data)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), fi.Mode().Perm(), "existing directory is left alone")
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(context.Background(), LoadOptions{Path: filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, ErrNoConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadUnwritableHome(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { os.Chmod(parent, 0o700) })

	_, err := Load(context.Background(), LoadOptions{
		ConfigHome: filepath.Join(parent, "config"),
		ConfigDirs: []string{},
	})
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestResultErr(t *testing.T) {
	res, err := read(context.Background(), "x.rc", strings.NewReader("bogus = 1\npanel_layer = up\n"), Options{})
	require.NoError(t, err)
	errs := multierr.Errors(res.Err())
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "x.rc:1: bogus: invalid option")
	assert.Contains(t, errs[1].Error(), "x.rc:2: panel_layer:")

	res, err = read(context.Background(), "x.rc", strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.NoError(t, res.Err())
}

func TestFormatRoundTrip(t *testing.T) {
	cfg, diags, _ := parse(t, `
gradient = horizontal
start_color = #101010 10
end_color = #202020 90
color_stop = 25% #ff0000 50
color_stop = 75.5% #00ff00
rounded = 4
border_width = 2
border_sides = LR
border_content_tint_weight = 30
background_color = #112233 40
border_color = #445566 60
gradient_id = 1
background_color_hover = #778899 70
rounded = 0
background_color = #000000 100
border_color_pressed = #ffffff 10
`, Options{})
	require.Empty(t, diags)

	text := style.Format(cfg.Backgrounds, cfg.Gradients)
	again, diags, _ := parse(t, text, Options{})
	require.Empty(t, diags, text)

	if diff := cmp.Diff(cfg.Backgrounds, again.Backgrounds); diff != "" {
		t.Errorf("backgrounds differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(cfg.Gradients, again.Gradients); diff != "" {
		t.Errorf("gradients differ (-want +got):\n%s", diff)
	}
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "embedded", SourceEmbedded.String())
	assert.Equal(t, "Source(9)", Source(9).String())
}
