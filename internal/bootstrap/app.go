package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/config"
	"github.com/osse101/CozyGarden_Go/internal/event"
	"github.com/osse101/CozyGarden_Go/internal/eventlog"
	"github.com/osse101/CozyGarden_Go/internal/format"
	"github.com/osse101/CozyGarden_Go/internal/logger"
	"github.com/osse101/CozyGarden_Go/internal/metrics"
	"github.com/osse101/CozyGarden_Go/internal/progression"
	"github.com/osse101/CozyGarden_Go/internal/save"
	"github.com/osse101/CozyGarden_Go/internal/scheduler"
	"github.com/osse101/CozyGarden_Go/internal/server"
	"github.com/osse101/CozyGarden_Go/internal/sse"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

// App is the fully wired garden: one engine, its persistence, its background
// jobs and its HTTP surface.
type App struct {
	Engine    progression.Service
	Server    *server.Server
	Saves     save.Service
	Events    eventlog.Service
	Hub       *sse.Hub
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Storage   *Storage
}

// NewApp builds every component and loads the saved garden. Nothing runs in
// the background until Start.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := loadCatalog(cfg.TuningPath)
	if err != nil {
		return nil, err
	}

	st, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus := event.NewMemoryBus()
	events := eventlog.NewService(st.Events)
	// A reconnecting page needs the current rebirth offer and whether the ending was seen
	hub := sse.NewHub(string(event.PrestigeAvailableChanged), string(event.EndingReached))
	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: events,
		Hub:             hub,
	}); err != nil {
		_ = st.Slots.Close()
		return nil, err
	}

	// Jobs outlive ctx so the final save can drain after shutdown starts.
	pool := worker.NewPool(cfg.WorkerCount, cfg.SaveQueueSize).
		WithContext(logger.WithRequestID(context.Background(), WorkerScope))
	saves := save.NewService(st.Slots, cat, cfg.SaveKey, pool)

	state, settings := saves.Load(ctx)
	engine := progression.NewService(state, settings, cat, bus, saves,
		progression.WithTickFraction(cfg.TickFraction))
	slog.Info(LogMsgGardenLoaded,
		"currency", state.Currency,
		"hearts", state.PrestigeCurrency,
		"rebirths", state.PrestigeCount)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		MaxRequestBytes:   cfg.MaxRequestBytes,
		Version:           cfg.Version,
	}, engine, format.New(cfg.Locale), st.Slots, events, hub)

	sched := scheduler.New(pool)
	sched.OnDrop(metrics.TicksSkippedTotal.Inc)

	return &App{
		Engine:    engine,
		Server:    srv,
		Saves:     saves,
		Events:    events,
		Hub:       hub,
		Pool:      pool,
		Scheduler: sched,
		Storage:   st,
	}, nil
}

// Start launches the hub, the workers and the scheduled jobs. It does not
// start the HTTP listener; call Server.Start for that.
func (a *App) Start(cfg *config.Config) {
	a.Hub.Start()
	a.Pool.Start()

	a.Scheduler.Schedule(cfg.TickInterval, progression.NewAccrualJob(a.Engine))
	if cfg.EventCleanupInterval > 0 {
		a.Scheduler.Schedule(cfg.EventCleanupInterval, eventlog.NewCleanupJob(a.Events, cfg.EventRetentionDays))
	}
	slog.Info(LogMsgJobsScheduled,
		"tick_interval", cfg.TickInterval,
		"cleanup_interval", cfg.EventCleanupInterval)
}

// Shutdown stops everything and writes the final save
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:    a.Server,
		Scheduler: a.Scheduler,
		Pool:      a.Pool,
		Hub:       a.Hub,
		Engine:    a.Engine,
		Saves:     a.Saves,
		Store:     a.Storage.Slots,
	})
}

// loadCatalog reads the tuning file when one is configured
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat := catalog.Default()
		slog.Info(LogMsgCatalogLoaded, "source", "builtin", "upgrades", cat.Len())
		return cat, nil
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "source", path, "upgrades", cat.Len())
	return cat, nil
}
