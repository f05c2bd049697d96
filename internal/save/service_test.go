package save

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
	"github.com/osse101/CozyGarden_Go/internal/metrics"
	"github.com/osse101/CozyGarden_Go/internal/storage"
	"github.com/osse101/CozyGarden_Go/internal/worker"
)

func TestLoad_MissingSlotStartsFresh(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store, nil, "", nil)

	state, settings := svc.Load(context.Background())

	assert.Equal(t, domain.NewProgressionState(), state)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestLoad_StoreErrorStartsFresh(t *testing.T) {
	store := new(storage.MockStore)
	store.On("Get", mock.Anything, DefaultSlotKey).Return(nil, errors.New("disk on fire"))
	svc := NewService(store, nil, "", nil)

	state, _ := svc.Load(context.Background())

	assert.Equal(t, domain.NewProgressionState(), state)
	store.AssertExpectations(t)
}

func TestLoad_CorruptRecordStartsFresh(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultSlotKey, []byte("{garbage")))
	svc := NewService(store, nil, "", nil)

	state, _ := svc.Load(ctx)

	assert.Equal(t, domain.NewProgressionState(), state)
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store, catalog.Default(), "slot", nil)
	state, settings := sampleState()

	svc.Save(ctx, state, settings)

	got, gotSettings := svc.Load(ctx)
	assert.Equal(t, state, got)
	assert.Equal(t, settings, gotSettings)
}

func TestSaveNow_ReturnsStoreError(t *testing.T) {
	store := new(storage.MockStore)
	store.On("Set", mock.Anything, DefaultSlotKey, mock.Anything).Return(errors.New("read-only"))
	svc := NewService(store, nil, "", nil)

	before := testutil.ToFloat64(metrics.SaveFailuresTotal)
	err := svc.SaveNow(context.Background(), domain.NewProgressionState(), domain.Settings{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SaveFailuresTotal))
}

func TestSave_FailureIsSwallowed(t *testing.T) {
	store := new(storage.MockStore)
	store.On("Set", mock.Anything, DefaultSlotKey, mock.Anything).Return(errors.New("read-only"))
	svc := NewService(store, nil, "", nil)

	assert.NotPanics(t, func() {
		svc.Save(context.Background(), domain.NewProgressionState(), domain.Settings{})
	})
	store.AssertNumberOfCalls(t, "Set", 1)
}

func TestSave_CoalescesToLatest(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	// Not started yet, so every Save lands while a flush is still queued.
	pool := worker.NewPool(1, 4)
	svc := NewService(store, nil, "", pool)

	for i := 1; i <= 10; i++ {
		state := domain.NewProgressionState()
		state.Currency = float64(i)
		svc.Save(ctx, state, domain.Settings{})
	}
	assert.Equal(t, 1, pool.Pending())

	pool.Start()
	pool.Stop()

	got, _ := svc.Load(ctx)
	assert.Equal(t, 10.0, got.Currency)
}

func TestSave_QueueFullIsDeferred(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	pool := worker.NewPool(1, 1)
	// Occupy the only queue slot.
	require.True(t, pool.TryEnqueue(worker.JobFunc(func(context.Context) error { return nil })))
	svc := NewService(store, nil, "", pool)

	before := testutil.ToFloat64(metrics.SavesDroppedTotal)
	state := domain.NewProgressionState()
	state.Currency = 7
	svc.Save(ctx, state, domain.Settings{})
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SavesDroppedTotal))

	pool.Start()
	pool.Stop()

	// A later save still persists the state.
	require.NoError(t, svc.SaveNow(ctx, state, domain.Settings{}))
	got, _ := svc.Load(ctx)
	assert.Equal(t, 7.0, got.Currency)
}

func TestWrite_SkipsOlderSnapshot(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store, nil, "", nil).(*service)

	older := svc.next(domain.NewProgressionState(), domain.Settings{})
	newerState := domain.NewProgressionState()
	newerState.Currency = 99
	newer := svc.next(newerState, domain.Settings{})

	require.NoError(t, svc.write(ctx, newer))
	require.NoError(t, svc.write(ctx, older))

	got, _ := svc.Load(ctx)
	assert.Equal(t, 99.0, got.Currency)
}
