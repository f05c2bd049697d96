package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CozyGarden_Go/internal/eventlog"
)

type eventLogRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewEventLogRepository creates a sqlite-backed event journal. created_at is
// stored as unix nanoseconds.
func NewEventLogRepository(db *sql.DB) eventlog.Repository {
	return &eventLogRepository{db: db, now: time.Now}
}

func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
	}

	var metadataJSON sql.NullString
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalMetadata, err)
		}
		metadataJSON = sql.NullString{String: string(b), Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO events (event_type, payload, metadata, created_at)
		VALUES (?, ?, ?, ?)
	`, eventType, string(payloadJSON), metadataJSON, r.now().UnixNano())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT id, event_type, payload, metadata, created_at FROM events WHERE 1=1`)
	var args []interface{}

	if filter.EventType != nil {
		qb.WriteString(" AND event_type = ?")
		args = append(args, *filter.EventType)
	}
	if filter.Since != nil {
		qb.WriteString(" AND created_at >= ?")
		args = append(args, filter.Since.UnixNano())
	}
	if filter.Until != nil {
		qb.WriteString(" AND created_at <= ?")
		args = append(args, filter.Until.UnixNano())
	}
	qb.WriteString(" ORDER BY created_at DESC, id DESC")
	if filter.Limit > 0 {
		qb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	var events []eventlog.Event
	for rows.Next() {
		var (
			evt      eventlog.Event
			payload  string
			metadata sql.NullString
			created  int64
		)
		if err := rows.Scan(&evt.ID, &evt.EventType, &payload, &metadata, &created); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
		}
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &evt.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
			}
		}
		evt.CreatedAt = time.Unix(0, created)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return events, nil
}

func (r *eventLogRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]eventlog.Event, error) {
	return r.GetEvents(ctx, eventlog.EventFilter{EventType: &eventType, Limit: limit})
}

func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := r.now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return res.RowsAffected()
}
