package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CozyGarden_Go/internal/config"
	"github.com/osse101/CozyGarden_Go/internal/event"
	"github.com/osse101/CozyGarden_Go/internal/save"
	"github.com/osse101/CozyGarden_Go/internal/storage"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                 0,
		LogLevel:             "error",
		LogFormat:            "text",
		Environment:          config.EnvTest,
		ServiceName:          "cozy-garden",
		StorageDriver:        driver,
		SaveDir:              t.TempDir(),
		SQLitePath:           t.TempDir() + "/garden.db",
		SaveKey:              "testGardenSave",
		SaveQueueSize:        16,
		TickInterval:         10 * time.Millisecond,
		TickFraction:         0.1,
		WorkerCount:          2,
		Locale:               "en",
		EventRetentionDays:   30,
		EventCleanupInterval: time.Hour,
		RateLimitRequests:    1000,
		RateLimitWindow:      time.Minute,
		MaxRequestBytes:      1 << 10,
	}
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "redis")

	_, err := OpenStorage(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := loadCatalog("/nonexistent/tuning.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
}

func TestApp_PetsSurviveRestart(t *testing.T) {
	for _, driver := range []string{storage.DriverFile, storage.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)
			ctx := context.Background()

			app, err := NewApp(ctx, cfg)
			require.NoError(t, err)
			app.Start(cfg)

			h := app.Server.Handler()
			for i := 0; i < 5; i++ {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pet", nil))
				require.Equal(t, http.StatusOK, rec.Code)
			}
			app.Shutdown(ctx)

			again, err := NewApp(ctx, cfg)
			require.NoError(t, err)
			defer again.Shutdown(ctx)

			assert.Equal(t, 5.0, again.Engine.State().Currency)
			assert.Equal(t, 5.0, again.Engine.State().PeakCurrency)
		})
	}
}

func TestApp_JournalRecordsUnlock(t *testing.T) {
	cfg := testConfig(t, storage.DriverMemory)
	ctx := context.Background()

	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	app.Start(cfg)
	defer app.Shutdown(ctx)

	// Zeze joins at 2000 pets
	for i := 0; i < 2000; i++ {
		app.Engine.Pet(ctx)
	}

	require.Eventually(t, func() bool {
		events, err := app.Events.Recent(ctx, string(event.UnlockCrossed), 10)
		return err == nil && len(events) == 1
	}, time.Second, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	app.Server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(event.UnlockCrossed))
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestGracefulShutdown_WritesFinalSave(t *testing.T) {
	cfg := testConfig(t, storage.DriverMemory)
	ctx := context.Background()

	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	app.Engine.Pet(ctx)

	// Memory store contents survive Close
	app.Shutdown(ctx)

	reloaded := save.NewService(app.Storage.Slots, app.Engine.Catalog(), cfg.SaveKey, worker.NewPool(1, 1))
	state, _ := reloaded.Load(ctx)
	assert.Equal(t, 1.0, state.Currency)
}
