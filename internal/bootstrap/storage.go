package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CozyGarden_Go/internal/config"
	"github.com/osse101/CozyGarden_Go/internal/database"
	"github.com/osse101/CozyGarden_Go/internal/database/postgres"
	"github.com/osse101/CozyGarden_Go/internal/database/sqlite"
	"github.com/osse101/CozyGarden_Go/internal/eventlog"
	"github.com/osse101/CozyGarden_Go/internal/storage"
)

// Storage holds the save slot store and the event journal for one driver.
// Closing Slots releases any database handle the journal shares.
type Storage struct {
	Slots  storage.Store
	Events eventlog.Repository
}

// OpenStorage builds the storage pair selected by cfg.StorageDriver. The sql
// drivers run their migrations before returning.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st *Storage

	switch cfg.StorageDriver {
	case storage.DriverMemory:
		st = &Storage{Slots: storage.NewMemoryStore(), Events: eventlog.NewMemoryRepository()}

	case storage.DriverFile:
		fs, err := storage.NewFileStore(cfg.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		st = &Storage{Slots: fs, Events: eventlog.NewMemoryRepository()}

	case storage.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		st = &Storage{Slots: sqlite.NewSlotStore(db), Events: sqlite.NewEventLogRepository(db)}

	case storage.DriverPostgres:
		pool, err := database.NewPool(cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		st = &Storage{Slots: postgres.NewSlotStore(pool), Events: postgres.NewEventLogRepository(pool)}

	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriverFmt, cfg.StorageDriver)
	}

	slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver)
	return st, nil
}
