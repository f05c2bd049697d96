package eventlog

import (
	"context"

	"github.com/osse101/CozyGarden_Go/internal/event"
	"github.com/osse101/CozyGarden_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for every garden notification
	Subscribe(bus event.Bus) error

	// Recent returns the newest journal entries, optionally of one type
	Recent(ctx context.Context, eventType string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all notification types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.NotificationTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadDecodeFailed, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	metadata := map[string]interface{}{MetadataKeyVersion: evt.Version}

	if err := s.repo.LogEvent(ctx, string(evt.Type), payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type)
	return nil
}

// Recent returns up to limit journal entries, newest first
func (s *service) Recent(ctx context.Context, eventType string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	if eventType != "" {
		return s.repo.GetEventsByType(ctx, eventType, limit)
	}
	return s.repo.GetEvents(ctx, EventFilter{Limit: limit})
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
