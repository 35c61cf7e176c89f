package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SkinBot_Go/internal/scheduler"
	"github.com/osse101/SkinBot_Go/internal/server"
	"github.com/osse101/SkinBot_Go/internal/telegram"
	"github.com/osse101/SkinBot_Go/internal/worker"
)

// ShutdownComponents holds everything that needs a graceful stop. Nil fields are skipped.
type ShutdownComponents struct {
	Server       *server.Server
	Scheduler    *scheduler.Scheduler
	Pool         *worker.Pool
	Telegram     *telegram.Bot
	Repositories *Repositories

	// BotsDone is closed once the chat bots have finished their in-flight updates
	BotsDone <-chan struct{}
}

// GracefulShutdown stops intake first, then background work, then storage:
// the HTTP server, the scheduler, the worker pool, then the Telegram client
// and finally the storage backend. Storage stays open until BotsDone is closed
// or ctx expires. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		if err := c.Scheduler.StopContext(ctx); err != nil {
			slog.Warn(LogMsgSchedulerStopTimeout, "error", err)
		}
	}

	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.BotsDone != nil {
		select {
		case <-c.BotsDone:
		case <-ctx.Done():
			slog.Warn(LogMsgBotsDrainTimeout, "error", ctx.Err())
		}
	}

	// polling has already stopped with ctx; this only drops idle connections
	c.Telegram.Close()

	if c.Repositories != nil {
		c.Repositories.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}
