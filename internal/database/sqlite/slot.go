// Package sqlite implements the save slot store and event journal on a local
// sqlite file opened by database.OpenSQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CozyGarden_Go/internal/storage"
)

// SlotStore keeps save slots in the save_slots table
type SlotStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSlotStore wraps an open sqlite handle. The handle is closed with the store.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db, now: time.Now}
}

// Get returns the slot contents or storage.ErrNotFound
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM save_slots WHERE slot_key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO save_slots (slot_key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, value, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToWriteSlot, key, err)
	}
	return nil
}

// Ping checks the handle
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying handle
func (s *SlotStore) Close() error {
	return s.db.Close()
}
