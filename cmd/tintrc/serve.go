package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/internal/server"
	"github.com/cptaffe/tintrc/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// serve exports the configuration at srvPath until ctx is cancelled.
// The file is read again on every reload signal and every ctl reload.
func serve(ctx context.Context, srvPath string, opts config.LoadOptions) error {
	s, err := server.New(ctx, func(ctx context.Context) (*config.Result, error) {
		return config.Load(ctx, opts)
	})
	if err != nil {
		return err
	}
	res := s.Result()
	logger.L(ctx).Info("loaded",
		zap.String("path", res.Path),
		zap.Stringer("source", res.Source),
		zap.Int("backgrounds", len(res.Config.UserBackgrounds())),
		zap.Int("diagnostics", len(res.Diagnostics)))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return listenAndServe(ctx, s, srvPath)
	})
	g.Go(func() error {
		reloadOnSignal(ctx, s)
		return nil
	})
	return g.Wait()
}

func reloadOnSignal(ctx context.Context, s *server.Server) {
	if len(reloadSignals) == 0 {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, reloadSignals...)
	defer signal.Stop(ch)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			s.Reload() //nolint:errcheck // logged by Reload
		}
	}
}
