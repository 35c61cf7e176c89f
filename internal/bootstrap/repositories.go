package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SkinBot_Go/internal/config"
	"github.com/osse101/SkinBot_Go/internal/database"
	"github.com/osse101/SkinBot_Go/internal/database/jsonfile"
	"github.com/osse101/SkinBot_Go/internal/database/migrations"
	"github.com/osse101/SkinBot_Go/internal/database/postgres"
	"github.com/osse101/SkinBot_Go/internal/repository"
)

// Repositories holds the storage backends the services run on
type Repositories struct {
	Inventory repository.Inventory
	Blocklist repository.Blocklist

	// Health pings the backend for readiness checks
	Health repository.Pinger

	close func()
}

// Close releases backend resources
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// InitializeRepositories opens the backend named by cfg.StorageBackend.
// The postgres backend is migrated before use.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if cfg.UsesPostgres() {
		return initPostgres(ctx, cfg)
	}
	return initFiles(cfg)
}

func initFiles(cfg *config.Config) (*Repositories, error) {
	for _, dir := range []string{cfg.InventoryDir, filepath.Dir(cfg.BlocklistPath)} {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedCreateDataDir, dir, err)
		}
	}

	inv := jsonfile.NewInventoryRepository(cfg.InventoryDir)
	slog.Info(LogMsgStorageReady, "backend", config.StorageFile, "inventory_dir", cfg.InventoryDir)
	return &Repositories{
		Inventory: inv,
		Blocklist: jsonfile.NewBlocklistRepository(cfg.BlocklistPath),
		Health:    inv,
	}, nil
}

func initPostgres(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	applied, err := migrations.Up(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied, "count", applied)

	inv := postgres.NewInventoryRepository(pool)
	slog.Info(LogMsgStorageReady, "backend", config.StoragePostgres, "host", cfg.DBHost, "db", cfg.DBName)
	return &Repositories{
		Inventory: inv,
		Blocklist: postgres.NewBlocklistRepository(pool),
		Health:    inv,
		close:     pool.Close,
	}, nil
}
