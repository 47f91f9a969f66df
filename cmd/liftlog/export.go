package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liftlog-dev/liftlog/internal/config"
	"github.com/liftlog-dev/liftlog/internal/errors"
	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/store"
)

func exportCmd(configDir *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the workout history as CSV",
		Long: `Export the workout history as CSV.

Writes to stdout unless --output is given.

Examples:
  liftlog export > workouts.csv
  liftlog export --output=workouts.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			return runExport(cfg, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default stdout)")

	return cmd
}

func runExport(cfg *config.Config, output string) error {
	logger, closer, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	entries := store.LoadEntries(context.Background(), st, logger)
	workout.SortEntries(entries)

	dest := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.New("L401").WithDetail(output).Wrap(err)
		}
		defer f.Close()
		dest = f
	}

	if err := workout.WriteCSV(dest, entries); err != nil {
		return errors.New("L401").Wrap(err)
	}
	if output != "" {
		fmt.Fprintf(os.Stderr, "exported %d entries to %s\n", len(entries), output)
	}
	return nil
}
