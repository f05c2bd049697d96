package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CozyGarden_Go/internal/progression"
	"github.com/osse101/CozyGarden_Go/internal/save"
	"github.com/osse101/CozyGarden_Go/internal/scheduler"
	"github.com/osse101/CozyGarden_Go/internal/server"
	"github.com/osse101/CozyGarden_Go/internal/sse"
	"github.com/osse101/CozyGarden_Go/internal/storage"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Hub       *sse.Hub
	Engine    progression.Service
	Saves     save.Service
	Store     storage.Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server and stream hub (no new transactions)
// 2. Scheduler (no new ticks)
// 3. Worker pool (queued ticks and saves finish)
// 4. A synchronous save of the final state
// 5. Storage
//
// Errors are logged and do not stop the sequence. Nil components are skipped.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Hijacked websocket connections outlive Server.Stop; closing the hub ends them.
	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.Pool != nil {
		slog.Info(LogMsgDrainingWorkers)
		c.Pool.Stop()
	}

	if c.Engine != nil && c.Saves != nil {
		if err := c.Saves.SaveNow(ctx, c.Engine.State(), c.Engine.Settings()); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		} else {
			slog.Info(LogMsgFinalSaveWritten)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
