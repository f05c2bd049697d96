package metrics

import (
	"context"

	"github.com/osse101/CozyGarden_Go/internal/event"
	"github.com/osse101/CozyGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := append([]event.Type{event.UpgradePurchased}, event.NotificationTypes...)

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.UpgradePurchased:
		payload, err := event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		UpgradesPurchasedTotal.WithLabelValues(payload.UpgradeID).Inc()

	case event.UnlockCrossed:
		payload, err := event.DecodePayload[event.UnlockCrossedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		UnlocksTotal.WithLabelValues(payload.UnlockID).Inc()

	case event.RebirthCompleted:
		RebirthsTotal.Inc()

	case event.EndingReached:
		EndingsTotal.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
