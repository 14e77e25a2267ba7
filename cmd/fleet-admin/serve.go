package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fleet-admin/internal/config"
	"fleet-admin/internal/database"
	"fleet-admin/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := newLogger(cfg)

		db, err := database.Initialize(cfg)
		if err != nil {
			return fmt.Errorf("database init: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close database", "error", err)
			}
		}()

		srv := server.New(cfg, db, server.Options{Logger: logger})

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Info("signal received, shutting down", "signal", sig.String())
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("http server exited: %w", err)
			}
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	},
}
