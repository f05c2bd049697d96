// Package storage provides the opaque string-keyed slots the save service
// reads and writes. Drivers backed by a database live under internal/database.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Store is a get/set record slot keyed by an opaque string.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
