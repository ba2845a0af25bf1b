package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pable/go-league-stats/internal/config"
	"github.com/pable/go-league-stats/internal/leagueapi"
	"github.com/pable/go-league-stats/internal/loader"
	"github.com/pable/go-league-stats/internal/model"
	"github.com/pable/go-league-stats/internal/storage"
)

// openStorage creates the snapshot directory if needed and opens the database.
func openStorage() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadSnapshot reads all five collections either live from the API or from
// the local snapshot.
func loadSnapshot(ctx context.Context, cfg config.Config, logger *slog.Logger, live bool) (model.Snapshot, error) {
	if live {
		client := leagueapi.NewClient(cfg.APIURL, cfg.Token)
		return loader.Load(ctx, client, logger)
	}
	db, err := openStorage()
	if err != nil {
		return model.Snapshot{}, err
	}
	defer db.Close()
	return loader.Load(ctx, db, logger)
}

// snapshotInfo returns nil when nothing has been fetched yet.
func snapshotInfo(ctx context.Context) (*storage.SnapshotInfo, error) {
	db, err := openStorage()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.GetSnapshotInfo(ctx)
}
