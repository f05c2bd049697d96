package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CozyGarden_Go/internal/event"
)

// Subscriber bridges the internal event bus to the stream hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new stream subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for every garden notification plus purchases
func (s *Subscriber) Subscribe() {
	types := append([]event.Type{event.UpgradePurchased}, event.NotificationTypes...)
	for _, t := range types {
		s.bus.Subscribe(t, s.handleEvent)
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

// handleEvent forwards the typed payload unchanged. Broadcast never blocks,
// so this is safe to run inside an engine commit.
func (s *Subscriber) handleEvent(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
