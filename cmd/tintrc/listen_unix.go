//go:build !plan9

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"

	"github.com/cptaffe/tintrc/internal/server"
	"github.com/cptaffe/tintrc/logger"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// shutdownSignals are the OS signals that trigger a clean exit.
// SIGTERM is included for launchd/systemd service managers.
var shutdownSignals = []os.Signal{os.Interrupt, unix.SIGTERM}

// reloadSignals make a running server read its file again.
var reloadSignals = []os.Signal{unix.SIGHUP}

// listenAndServe serves s at srvPath until ctx is cancelled. With 9pserve
// installed the socket is announced by 9pserve, which multiplexes clients
// onto one pipe; without it each client gets its own connection.
func listenAndServe(ctx context.Context, s *server.Server, srvPath string) error {
	if _, err := exec.LookPath("9pserve"); err != nil {
		return listenSocket(ctx, s, srvPath)
	}
	rw, cleanup, err := listen(srvPath)
	if err != nil {
		return err
	}
	logger.L(ctx).Info("posted", zap.String("addr", srvPath))
	stop := context.AfterFunc(ctx, func() { rw.Close() })
	defer stop()
	s.Serve(rw)
	cleanup()
	if ctx.Err() == nil {
		return errors.New("9pserve exited")
	}
	return nil
}

func listenSocket(ctx context.Context, s *server.Server, srvPath string) error {
	os.Remove(srvPath)
	ln, err := net.Listen("unix", srvPath)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer os.Remove(srvPath)
	return s.ServeListener(ctx, ln)
}

// listen removes any stale socket, forks 9pserve announcing at
// unix!srvPath, and returns the server end of the socketpair.
// The returned cleanup function closes our end, which makes 9pserve
// exit, and waits for it.
func listen(srvPath string) (io.ReadWriteCloser, func(), error) {
	os.Remove(srvPath)

	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("socketpair: %w", err)
	}
	// x/sys/unix has no SOCK_CLOEXEC on darwin. The copies exec.Cmd
	// dup2's onto the child's stdin and stdout survive exec.
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])
	parent := os.NewFile(uintptr(fds[0]), "tintrc-srv")
	child := os.NewFile(uintptr(fds[1]), "tintrc-9pserve")

	cmd := exec.Command("9pserve", "unix!"+srvPath)
	cmd.Stdin = child
	cmd.Stdout = child
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		parent.Close()
		child.Close()
		return nil, nil, fmt.Errorf("9pserve: %w", err)
	}
	child.Close()

	cleanup := func() {
		parent.Close()
		cmd.Wait() //nolint:errcheck
	}
	return parent, cleanup, nil
}
