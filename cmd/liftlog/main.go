package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/liftlog-dev/liftlog/internal/config"
	"github.com/liftlog-dev/liftlog/internal/errors"
	"github.com/liftlog-dev/liftlog/pkg/store"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// verbose forces debug-level logging regardless of configuration.
var verbose bool

func main() {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "liftlog",
		Short: "A workout log that lives in your browser",
		Long: `Liftlog is a self-hosted workout log.

It serves a live web UI over WebSocket, keeps your workout history
and weekly plan in a local database, and can export to CSV or
snapshot to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory containing liftlog.json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		serveCmd(&configDir),
		exportCmd(&configDir),
		backupCmd(&configDir),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var coded *errors.Error
		if stderrors.As(err, &coded) {
			fmt.Fprint(os.Stderr, coded.Format())
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

// setupLogger builds the process logger: text on stderr, plus a JSON
// stream to a file when configured. Returns a closer for the file.
func setupLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	slog.SetDefault(logger)
	return logger, closer, nil
}

// openStore opens the configured record store: bolt when a data path is
// set, in-memory otherwise.
func openStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.DataPath == "" {
		logger.Warn("no data path configured, records will not survive restart")
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenBolt(cfg.DataPath)
	if err != nil {
		return nil, errors.New("L201").WithDetail(cfg.DataPath).Wrap(err)
	}
	return st, nil
}

func buildStamp() string {
	if date != "unknown" {
		return date
	}
	return time.Now().Format(time.RFC3339)
}
