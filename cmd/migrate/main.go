// Command migrate applies or inspects the postgres schema used by STORAGE_BACKEND=postgres.
//
// Usage: migrate [up|down|status]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/SkinBot_Go/internal/config"
	"github.com/osse101/SkinBot_Go/internal/database"
	"github.com/osse101/SkinBot_Go/internal/database/migrations"
	"github.com/osse101/SkinBot_Go/internal/logger"
)

const migrateTimeout = 2 * time.Minute

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := run(cmd); err != nil {
		slog.Error("Migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(cmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-migrate", cfg.Version, cfg.Environment, false))

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch cmd {
	case "up":
		n, err := migrations.Up(ctx, pool)
		if err != nil {
			return err
		}
		slog.Info("Migrations complete", "applied", n)
	case "down":
		return migrations.Down(ctx, pool)
	case "status":
		statuses, err := migrations.Status(ctx, pool)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			fmt.Printf("%-30s %-10s %s\n", s.Source.Path, s.State, s.AppliedAt.Format(time.RFC3339))
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	return nil
}
