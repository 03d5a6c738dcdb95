//go:build plan9

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"9fans.net/go/plan9/srv9p"
	"github.com/cptaffe/tintrc/internal/server"
)

// shutdownSignals are the OS signals that trigger a clean exit.
var shutdownSignals = []os.Signal{os.Interrupt}

var reloadSignals []os.Signal

// listenAndServe posts the service to /srv and serves it until ctx is
// cancelled. srv9p.Post takes only the base name of srvPath and
// prepends /srv/ itself.
func listenAndServe(ctx context.Context, s *server.Server, srvPath string) error {
	rw, err := srv9p.Post(filepath.Base(srvPath))
	if err != nil {
		return fmt.Errorf("post %s: %w", srvPath, err)
	}
	stop := context.AfterFunc(ctx, func() { rw.Close() })
	defer stop()
	s.Serve(rw)
	return nil
}
