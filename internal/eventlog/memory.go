package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the journal in process memory. It is used by the
// memory storage driver and in tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	events []Event
	now    func() time.Time
}

// NewMemoryRepository creates an empty in-memory journal
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// LogEvent appends an event
func (r *MemoryRepository) LogEvent(_ context.Context, eventType string, payload, metadata map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.events = append(r.events, Event{
		ID:        r.nextID,
		EventType: eventType,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: r.now(),
	})
	return nil
}

// GetEvents returns matching events, newest first
func (r *MemoryRepository) GetEvents(_ context.Context, filter EventFilter) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Event
	for i := len(r.events) - 1; i >= 0; i-- {
		evt := r.events[i]
		if filter.EventType != nil && evt.EventType != *filter.EventType {
			continue
		}
		if filter.Since != nil && evt.CreatedAt.Before(*filter.Since) {
			continue
		}
		if filter.Until != nil && evt.CreatedAt.After(*filter.Until) {
			continue
		}
		out = append(out, evt)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// GetEventsByType returns events of one type, newest first
func (r *MemoryRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]Event, error) {
	return r.GetEvents(ctx, EventFilter{EventType: &eventType, Limit: limit})
}

// CleanupOldEvents drops events older than retentionDays
func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	kept := r.events[:0]
	var removed int64
	for _, evt := range r.events {
		if evt.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, evt)
	}
	r.events = kept
	return removed, nil
}
