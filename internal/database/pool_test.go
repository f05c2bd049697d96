package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CozyGarden_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

const upsertSlot = `
	INSERT INTO save_slots (slot_key, data, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (slot_key) DO UPDATE
	SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
`

func migratedPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, MigratePostgres(context.Background(), pool))
	return pool
}

// TestPool_ConcurrentSlotUpserts hammers one save slot from many goroutines,
// the way overlapping save jobs would, and checks every connection comes back.
func TestPool_ConcurrentSlotUpserts(t *testing.T) {
	pool := migratedPool(t, 4)
	ctx := context.Background()
	checker := leaktest.NewGoroutineChecker(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			data := []byte(fmt.Sprintf(`{"currency":%d}`, n))
			if _, err := pool.Exec(ctx, upsertSlot, "concurrent", data); err != nil {
				t.Errorf("writer %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	var rows int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM save_slots WHERE slot_key = $1", "concurrent").Scan(&rows))
	assert.Equal(t, 1, rows, "upserts should collapse onto one slot")

	var data []byte
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT data FROM save_slots WHERE slot_key = $1", "concurrent").Scan(&data))
	assert.Contains(t, string(data), `"currency":`)

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "all connections should be released")
	checker.Check(2)
}

// TestPool_RejectedWritesReleaseConnections checks that failed slot and event
// writes do not hold on to pooled connections.
func TestPool_RejectedWritesReleaseConnections(t *testing.T) {
	pool := migratedPool(t, 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := pool.Exec(ctx, upsertSlot, "rejected", nil)
		assert.Error(t, err, "save_slots.data is NOT NULL")

		_, err = pool.Exec(ctx,
			"INSERT INTO events (event_type, payload) VALUES ($1, $2)", "garden.pet", "not json")
		assert.Error(t, err, "events.payload must be valid JSON")
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "no connections should leak after errors")

	// Pool is still usable once the errors are behind it.
	_, err := pool.Exec(ctx, upsertSlot, "rejected", []byte(`{}`))
	require.NoError(t, err)
}

// TestPool_SaveSurvivesExhaustion shows a save waits for a free connection
// rather than failing when every connection is held.
func TestPool_SaveSurvivesExhaustion(t *testing.T) {
	pool := migratedPool(t, 2)
	ctx := context.Background()

	var held []*pgxpool.Conn
	for i := 0; i < 2; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		held = append(held, conn)
	}

	done := make(chan error, 1)
	go func() {
		_, err := pool.Exec(ctx, upsertSlot, "exhausted", []byte(`{"pets":1}`))
		done <- err
	}()

	select {
	case <-done:
		t.Fatal("save should wait while every connection is held")
	case <-time.After(100 * time.Millisecond):
	}

	held[0].Release()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("save did not complete after a connection was released")
	}
	held[1].Release()
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("://not a url", 2, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

// TestMigratePostgres verifies the embedded migrations apply and re-run cleanly
func TestMigratePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	require.NoError(t, MigratePostgres(ctx, pool))
	require.NoError(t, MigratePostgres(ctx, pool), "second run should be a no-op")

	for _, table := range []string{"save_slots", "events"} {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}
}
