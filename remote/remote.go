// Package remote is a client for a running tintrc server.
//
// The server is a 9P file server exporting the configuration it loaded
// (see the serve command). Typical usage from a tool that needs the item
// order:
//
//	order, err := remote.Items()
//	if err != nil { ... }
//
// After editing the file, ask the server to read it again:
//
//	remote.Reload()
package remote

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"9fans.net/go/plan9"
	"9fans.net/go/plan9/client"
)

// Service is the name the server posts itself under in the namespace.
const Service = "tintrc"

// ---- connection management ----

var (
	connMu sync.Mutex
	fsys   *client.Fsys
)

// currentFsys returns the cached connection to the server, connecting on
// first use or after a previous connection error has been reset.
func currentFsys() (*client.Fsys, error) {
	connMu.Lock()
	defer connMu.Unlock()
	if fsys != nil {
		return fsys, nil
	}
	fs, err := client.MountService(Service)
	if err != nil {
		return nil, err
	}
	fsys = fs
	return fs, nil
}

// resetFsys clears the cached connection so the next call to currentFsys
// will reconnect. Call this when any operation returns a connection error.
func resetFsys() {
	connMu.Lock()
	fsys = nil
	connMu.Unlock()
}

// Dial connects to the server listening on the unix socket at addr.
// Use it when the server was started with an explicit socket path.
func Dial(addr string) (*client.Fsys, error) {
	return client.Mount("unix", addr)
}

// ---- namespace API ----

// ReadFile returns the contents of path on the server posted under
// Service, for example "items" or "backgrounds/1".
func ReadFile(path string) ([]byte, error) {
	fs, err := currentFsys()
	if err != nil {
		return nil, err
	}
	data, err := Read(fs, path)
	if err != nil {
		resetFsys()
	}
	return data, err
}

// Items returns the item order of the server posted under Service.
func Items() (string, error) {
	data, err := ReadFile("items")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ItemsFsys returns the item order served by fs.
func ItemsFsys(fs *client.Fsys) (string, error) {
	data, err := Read(fs, "items")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Reload asks the server posted under Service to read its file again.
func Reload() error {
	fs, err := currentFsys()
	if err != nil {
		return err
	}
	if err := ReloadFsys(fs); err != nil {
		resetFsys()
		return err
	}
	return nil
}

// ---- functional helpers (for callers that manage their own fs connection) ----

// Read returns the contents of path on fs.
func Read(fs *client.Fsys, path string) ([]byte, error) {
	fid, err := fs.Open(path, plan9.OREAD)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fid.Close()
	data, err := io.ReadAll(fid)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Diagnostics returns the problems the server found in its file, one
// per element.
func Diagnostics(fs *client.Fsys) ([]string, error) {
	data, err := Read(fs, "diagnostics")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// ReloadFsys writes "reload" to the ctl file of fs. The write returns once
// the new configuration is being served.
func ReloadFsys(fs *client.Fsys) error {
	fid, err := fs.Open("ctl", plan9.OWRITE)
	if err != nil {
		return fmt.Errorf("open ctl: %w", err)
	}
	defer fid.Close()
	if _, err := fid.Write([]byte("reload\n")); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}
