package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "github.com/nickmafra/sym-balls/internal/adapters/http"
	"github.com/nickmafra/sym-balls/internal/infrastructure/watch"
	"github.com/nickmafra/sym-balls/internal/telemetry"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(cfg.Trace.Exporter, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("trace shutdown", "error", err)
		}
	}()

	if cfg.Levels.Dir != "" && cfg.Levels.Watch {
		w, err := watch.NewDir(cfg.Levels.Dir, watch.DefaultDebounce, logger, a.levels.Purge)
		if err != nil {
			return err
		}
		defer w.Stop()
		go func() {
			if err := w.Start(ctx); err != nil {
				logger.Warn("level watcher stopped", "error", err)
			}
		}()
	}

	gin.SetMode(gin.ReleaseMode)
	router := httpadapter.NewRouter(httpadapter.New(a.service, logger), logger, httpadapter.RouterOptions{
		RateLimit: cfg.Server.RateLimit,
		Burst:     cfg.Server.Burst,
	})
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("listening", "addr", cfg.Server.Addr, "levels", cfg.Levels.Dir, "store", cfg.Store.Path)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
