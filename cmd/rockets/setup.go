package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/rocket-range/config"
	"github.com/lixenwraith/rocket-range/core"
	"github.com/lixenwraith/rocket-range/logging"
	"github.com/lixenwraith/rocket-range/metrics"
)

// setupLogging writes to the log file while the terminal owns the screen
// and to stderr otherwise
func setupLogging(cfg *config.Config, interactive bool) (logging.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}
	if interactive {
		f, err := logging.OpenFile(cfg.Log.Dir, logging.DefaultFileName)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() { _ = f.Close() }
	}
	return logging.New(cfg.LogConfig(), w), closer, nil
}

// startMetrics serves /metrics on addr until ctx is done. An empty addr
// disables metrics and returns a nil collector.
func startMetrics(ctx context.Context, addr string, reg *prometheus.Registry, log logging.Logger) (*metrics.SceneCollector, error) {
	if addr == "" {
		return nil, nil
	}
	collector, err := metrics.NewSceneCollector(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	core.Go(func() {
		log.Info(ctx, "metrics listening", logging.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "metrics server failed", logging.String("error", err.Error()))
		}
	})
	core.Go(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})
	return collector, nil
}
