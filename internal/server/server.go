// Package server exports a loaded panel configuration as a read-only 9P
// file tree.
//
// The tree is:
//
//	/items            item order, one tag per widget
//	/path             file the configuration was read from
//	/source           which bootstrap step produced that file
//	/diagnostics      one problem per line
//	/config.toml      the whole resolved model
//	/backgrounds/<id> one background in directive form
//	/gradients/<id>   one gradient in directive form
//	/ctl              write "reload" to read the file again
//
// Every open snapshots the file contents, so a reader never sees a half
// applied reload.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/logger"
	"go.uber.org/zap"
)

// Loader produces a configuration. It is called once by New and again on
// every reload.
type Loader func(ctx context.Context) (*config.Result, error)

// Server holds the current configuration and answers 9P requests for it.
//
// mu guards res and gen. Reload holds it for writing for the whole load,
// so requests that arrive meanwhile wait for the new configuration.
type Server struct {
	ctx  context.Context
	load Loader

	mu  sync.RWMutex
	res *config.Result
	gen uint32
}

// New performs the initial load and returns a server for its result.
func New(ctx context.Context, load Loader) (*Server, error) {
	res, err := load(ctx)
	if err != nil {
		return nil, err
	}
	return &Server{ctx: ctx, load: load, res: res}, nil
}

// Result returns the configuration currently being served.
func (s *Server) Result() *config.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.res
}

// Reload runs the loader again and serves its result. On failure the
// previous configuration stays in place.
func (s *Server) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.L(s.ctx)
	res, err := s.load(s.ctx)
	if err != nil {
		log.Error("reload", zap.Error(err))
		return err
	}
	s.res = res
	s.gen++
	log.Info("reloaded",
		zap.String("path", res.Path),
		zap.Stringer("source", res.Source),
		zap.Int("diagnostics", len(res.Diagnostics)))
	return nil
}

// tree returns the file tree of the current configuration.
func (s *Server) tree() tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tree{res: s.res, gen: s.gen}
}

// ServeListener accepts connections on ln until ctx is cancelled and
// serves each on its own goroutine.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	// Close the listener when the context is cancelled so that Accept
	// returns an error and the loop below can exit.
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	log := logger.L(ctx)
	log.Info("listening", zap.Stringer("addr", ln.Addr()))
	for {
		c, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Error("accept", zap.Error(err))
			continue
		}
		go func() {
			defer c.Close()
			s.Serve(c)
		}()
	}
}

// Serve answers 9P requests read from rw until it fails or reaches EOF.
func (s *Server) Serve(rw io.ReadWriter) {
	s.handleConn(rw)
}
