package save

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
	"github.com/osse101/CozyGarden_Go/internal/logger"
	"github.com/osse101/CozyGarden_Go/internal/metrics"
	"github.com/osse101/CozyGarden_Go/internal/storage"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

// Service loads the garden at startup and persists it after every change
type Service interface {
	// Load returns the saved garden, or a fresh one when nothing usable is stored
	Load(ctx context.Context) (domain.ProgressionState, domain.Settings)

	// Save queues the snapshot for writing. Failures are logged and counted.
	Save(ctx context.Context, state domain.ProgressionState, settings domain.Settings)

	// SaveNow writes the snapshot before returning
	SaveNow(ctx context.Context, state domain.ProgressionState, settings domain.Settings) error
}

type snapshot struct {
	seq      uint64
	state    domain.ProgressionState
	settings domain.Settings
}

type service struct {
	store   storage.Store
	catalog *catalog.Catalog
	key     string
	pool    *worker.Pool

	mu      sync.Mutex
	seq     uint64
	pending *snapshot
	queued  bool

	// writeMu orders writes; written is the newest seq already stored
	writeMu sync.Mutex
	written uint64
}

// NewService creates a save service writing to key in store. Saves run on pool;
// a nil pool makes Save synchronous.
func NewService(store storage.Store, cat *catalog.Catalog, key string, pool *worker.Pool) Service {
	if cat == nil {
		cat = catalog.Default()
	}
	if key == "" {
		key = DefaultSlotKey
	}
	return &service{store: store, catalog: cat, key: key, pool: pool}
}

func (s *service) Load(ctx context.Context) (domain.ProgressionState, domain.Settings) {
	log := logger.FromContext(ctx)

	raw, err := s.store.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info(LogMsgNoSnapshot, "key", s.key)
		return domain.NewProgressionState(), domain.Settings{}
	}
	if err != nil {
		log.Error(LogMsgSnapshotReadFailed, "key", s.key, "error", err)
		return domain.NewProgressionState(), domain.Settings{}
	}

	state, settings, report := Decode(raw, s.catalog)
	if report.Malformed {
		log.Warn(LogMsgSnapshotMalformed, "key", s.key)
		return state, settings
	}
	if report.LevelsDiscarded {
		log.Warn(LogMsgLevelsDiscarded, "key", s.key, "catalog_len", s.catalog.Len())
	}
	if len(report.DroppedUnlocks) > 0 {
		log.Warn(LogMsgUnknownUnlocks, "key", s.key, "unlocks", report.DroppedUnlocks)
	}

	log.Info(LogMsgSnapshotLoaded,
		"currency", state.Currency,
		"prestige_currency", state.PrestigeCurrency,
		"defaulted", report.DefaultedFields)
	return state, settings
}

// Save keeps only the newest pending snapshot; at most one flush job is queued.
func (s *service) Save(ctx context.Context, state domain.ProgressionState, settings domain.Settings) {
	snap := s.next(state, settings)

	if s.pool == nil {
		_ = s.write(ctx, snap)
		return
	}

	s.mu.Lock()
	s.pending = snap
	if s.queued {
		s.mu.Unlock()
		return
	}
	s.queued = true
	s.mu.Unlock()

	if !s.pool.TryEnqueue(worker.JobFunc(s.flush)) {
		s.mu.Lock()
		s.queued = false
		s.mu.Unlock()
		metrics.SavesDroppedTotal.Inc()
		logger.FromContext(ctx).Warn(LogMsgSaveDropped, "key", s.key)
	}
}

func (s *service) SaveNow(ctx context.Context, state domain.ProgressionState, settings domain.Settings) error {
	return s.write(ctx, s.next(state, settings))
}

func (s *service) next(state domain.ProgressionState, settings domain.Settings) *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return &snapshot{seq: s.seq, state: state.Clone(), settings: settings}
}

func (s *service) flush(ctx context.Context) error {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.queued = false
	s.mu.Unlock()

	if snap == nil {
		return nil
	}
	return s.write(ctx, snap)
}

func (s *service) write(ctx context.Context, snap *snapshot) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// A newer snapshot already reached the store.
	if snap.seq <= s.written {
		return nil
	}

	log := logger.FromContext(ctx)

	raw, err := Encode(snap.state, snap.settings, s.catalog)
	if err != nil {
		metrics.SaveFailuresTotal.Inc()
		log.Error(LogMsgSaveFailed, "key", s.key, "error", err)
		return fmt.Errorf(ErrMsgEncodeSnapshotFmt, err)
	}

	if err := s.store.Set(ctx, s.key, raw); err != nil {
		metrics.SaveFailuresTotal.Inc()
		log.Error(LogMsgSaveFailed, "key", s.key, "error", err)
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, s.key, err)
	}

	s.written = snap.seq
	metrics.SavesTotal.Inc()
	log.Debug(LogMsgSaved, "key", s.key, "bytes", len(raw))
	return nil
}
