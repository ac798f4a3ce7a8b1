package cmd

import (
	"context"
	"errors"
	"fmt"

	"gallery-manager/core/config"
	"gallery-manager/core/database"
	"gallery-manager/core/logger"
	"gallery-manager/core/storage"
	"gallery-manager/feature/gallery/store"
	gallerysync "gallery-manager/feature/gallery/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncAlbumsOnly bool
	syncExifOnly   bool
)

// syncCmd runs one synchronization pass from the command line, without the
// HTTP server. Useful for cron jobs and for seeding a fresh database.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one synchronization pass against the storage bucket",
	Long: `Enumerates the gallery prefix of the storage bucket, reconciles album
descriptors and images into the database, and ingests the bucket-wide
EXIF document.

Examples:
  # Full pass: albums, then EXIF
  gallery-manager sync

  # Albums only
  gallery-manager sync --albums-only

  # EXIF only
  gallery-manager sync --exif-only`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncAlbumsOnly, "albums-only", false, "Sync album descriptors and images only")
	syncCmd.Flags().BoolVar(&syncExifOnly, "exif-only", false, "Sync the EXIF document only")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncAlbumsOnly && syncExifOnly {
		return errors.New("--albums-only and --exif-only are mutually exclusive")
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	st := store.New(db)
	if err := st.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	syncer := gallerysync.New(client, st, cfg.Storage, l)

	var outcome gallerysync.Outcome
	switch {
	case syncAlbumsOnly:
		outcome = syncer.SyncAlbums(ctx)
	case syncExifOnly:
		outcome = syncer.SyncExif(ctx)
	default:
		outcome = syncer.SyncAll(ctx)
	}

	l.Info("Sync finished",
		zap.Stringer("state", outcome.State),
		zap.String("status", outcome.Status),
		zap.String("message", outcome.Message),
	)

	if !outcome.Success {
		return fmt.Errorf("sync failed: %s", outcome.Message)
	}
	return nil
}
