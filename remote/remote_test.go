package remote

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"9fans.net/go/plan9/client"
	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mount(t *testing.T, rc string) (*client.Fsys, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tint2rc")
	require.NoError(t, os.WriteFile(path, []byte(rc), 0o644))

	s, err := server.New(context.Background(), func(ctx context.Context) (*config.Result, error) {
		return config.ReadFile(ctx, path, config.Options{})
	})
	require.NoError(t, err)

	cli, srv := net.Pipe()
	go func() {
		defer srv.Close()
		s.Serve(srv)
	}()
	t.Cleanup(func() { cli.Close() })

	conn, err := client.NewConn(cli)
	require.NoError(t, err)
	fs, err := conn.Attach(nil, "none", "")
	require.NoError(t, err)
	return fs, path
}

func TestRead(t *testing.T) {
	fs, path := mount(t, "panel_items = LTSBC\n")

	data, err := Read(fs, "items")
	require.NoError(t, err)
	assert.Equal(t, "LTSBC\n", string(data))

	data, err = Read(fs, "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", string(data))

	_, err = Read(fs, "backgrounds/1")
	assert.ErrorContains(t, err, "open backgrounds/1")
}

func TestDiagnostics(t *testing.T) {
	fs, _ := mount(t, "bogus = 1\npanel_layer = sideways\n")

	diags, err := Diagnostics(fs)
	require.NoError(t, err)
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0], "bogus")
	assert.Contains(t, diags[1], "panel_layer")
}

func TestReloadFsys(t *testing.T) {
	fs, path := mount(t, "panel_items = L\n")

	require.NoError(t, os.WriteFile(path, []byte("panel_items = TC\n"), 0o644))
	require.NoError(t, ReloadFsys(fs))

	data, err := Read(fs, "items")
	require.NoError(t, err)
	assert.Equal(t, "TC\n", string(data))

	require.NoError(t, os.Remove(path))
	assert.ErrorContains(t, ReloadFsys(fs), "reload")
}

func TestNamespaceHelpers(t *testing.T) {
	ns := t.TempDir()
	t.Setenv("NAMESPACE", ns)
	resetFsys()
	t.Cleanup(resetFsys)

	_, err := Items()
	require.Error(t, err, "nothing posted yet")

	path := filepath.Join(t.TempDir(), "tint2rc")
	require.NoError(t, os.WriteFile(path, []byte("panel_items = LTB\n"), 0o644))
	s, err := server.New(context.Background(), func(ctx context.Context) (*config.Result, error) {
		return config.ReadFile(ctx, path, config.Options{})
	})
	require.NoError(t, err)

	ln, err := net.Listen("unix", filepath.Join(ns, Service))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeListener(ctx, ln) }()

	order, err := Items()
	require.NoError(t, err)
	assert.Equal(t, "LTB", order)

	data, err := ReadFile("path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", string(data))

	_, err = ReadFile("backgrounds/9")
	assert.ErrorContains(t, err, "open backgrounds/9")

	require.NoError(t, os.WriteFile(path, []byte("panel_items = C\n"), 0o644))
	require.NoError(t, Reload())
	order, err = Items()
	require.NoError(t, err)
	assert.Equal(t, "C", order)

	cancel()
	assert.NoError(t, <-done)
}

func TestItemsFsys(t *testing.T) {
	fs, _ := mount(t, "panel_items = TSC\n")
	order, err := ItemsFsys(fs)
	require.NoError(t, err)
	assert.Equal(t, "TSC", order)
}
