package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liftlog-dev/liftlog/internal/config"
	"github.com/liftlog-dev/liftlog/internal/errors"
	"github.com/liftlog-dev/liftlog/pkg/backup"
)

func backupCmd(configDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the record store to S3",
		Long: `Snapshot the record store to S3.

Uploads every record under a timestamped prefix in the configured
bucket. Requires backup.bucket in liftlog.json or the
LIFTLOG_BACKUP_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			return runBackup(cfg)
		},
	}
	return cmd
}

func runBackup(cfg *config.Config) error {
	if !cfg.Backup.Enabled() {
		return errors.New("L301")
	}

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

	client := backup.NewClient(backup.ClientConfig{
		Region:    cfg.Backup.Region,
		Endpoint:  cfg.Backup.Endpoint,
		AccessKey: cfg.Backup.AccessKey,
		SecretKey: cfg.Backup.SecretKey,
	})
	snap := backup.New(client, st, cfg.Backup.Bucket, cfg.Backup.Prefix, logger)

	keys, err := snap.Snapshot(context.Background())
	if err != nil {
		return errors.New("L302").Wrap(err)
	}

	fmt.Fprintf(os.Stderr, "uploaded %d objects to s3://%s\n", len(keys), cfg.Backup.Bucket)
	return nil
}
