package main

import (
	"fmt"
	"log/slog"
	"os"

	"fleet-admin/internal/config"

	"github.com/spf13/cobra"
)

var (
	logFormat string
	rootCmd   = &cobra.Command{
		Use:   "fleet-admin",
		Short: "Fleet account administration API",
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log output format: json or text")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// newLogger builds the process logger and installs it as the slog default
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if logFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With("service", "fleet-admin")
	slog.SetDefault(logger)
	return logger
}
