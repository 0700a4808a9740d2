package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/excelviz-go/internal/config"
	"github.com/ukaji3/excelviz-go/internal/server"
	"github.com/ukaji3/excelviz-go/internal/session"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/logging"
)

var addr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: \":$PORT\")")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		setupLogger(cfg.Log.Level)
	}
	listen := cfg.Server.Addr()
	if addr != "" {
		listen = addr
	}

	srv := &http.Server{
		Addr:              listen,
		Handler:           server.New(cfg, session.NewStore(cfg.Analysis.MaxSessions)),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log := logging.Logger()
	log.Info("server listening", slog.String("addr", listen), slog.Any("cors_origins", cfg.Server.CORSOrigins))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
