package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CozyGarden_Go/internal/storage"
)

// SlotStore keeps save slots in the save_slots table
type SlotStore struct {
	db *pgxpool.Pool
}

// NewSlotStore creates a postgres-backed storage.Store. The pool is owned by
// the store and closed with it.
func NewSlotStore(db *pgxpool.Pool) *SlotStore {
	return &SlotStore{db: db}
}

// Get returns the slot contents or storage.ErrNotFound
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM save_slots WHERE slot_key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToReadSlot, key, err)
	}
	return data, nil
}

// Set upserts the slot contents
func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New(ErrMsgEmptySlotKey)
	}
	query := `
		INSERT INTO save_slots (slot_key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot_key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToWriteSlot, key, err)
	}
	return nil
}

// Ping checks the connection
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the pool
func (s *SlotStore) Close() error {
	s.db.Close()
	return nil
}
