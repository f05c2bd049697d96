package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// ErrUnknownNotification is returned for a notification kind with no event mapping
var ErrUnknownNotification = errors.New(ErrMsgUnknownNotification)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Garden event types
const (
	UnlockCrossed            Type = "unlock.crossed"
	EndingReached            Type = "ending.reached"
	PrestigeAvailableChanged Type = "prestige.available_changed"
	RebirthCompleted         Type = "rebirth.completed"
	UpgradePurchased         Type = "upgrade.purchased"
)

// NotificationTypes lists the event types that carry engine notifications.
var NotificationTypes = []Type{
	UnlockCrossed,
	EndingReached,
	PrestigeAvailableChanged,
	RebirthCompleted,
}

// Typed event payloads for type safety

// UnlockCrossedPayloadV1 is the typed payload for unlock events
type UnlockCrossedPayloadV1 struct {
	UnlockID     string  `json:"unlock_id"`
	PeakCurrency float64 `json:"peak_currency"`
	Timestamp    int64   `json:"timestamp"`
}

// EndingReachedPayloadV1 is the typed payload for the ending event
type EndingReachedPayloadV1 struct {
	PrestigeCurrency int     `json:"prestige_currency"`
	PeakCurrency     float64 `json:"peak_currency"`
	Timestamp        int64   `json:"timestamp"`
}

// PrestigeAvailableChangedPayloadV1 is the typed payload for prestige gain changes
type PrestigeAvailableChangedPayloadV1 struct {
	Gain      int   `json:"gain"`
	Timestamp int64 `json:"timestamp"`
}

// RebirthCompletedPayloadV1 is the typed payload for rebirth events
type RebirthCompletedPayloadV1 struct {
	Gain             int   `json:"gain"`
	PrestigeCurrency int   `json:"prestige_currency"`
	PrestigeCount    int   `json:"prestige_count"`
	Timestamp        int64 `json:"timestamp"`
}

// UpgradePurchasedPayloadV1 is the typed payload for purchase events
type UpgradePurchasedPayloadV1 struct {
	UpgradeID string  `json:"upgrade_id"`
	Level     int     `json:"level"`
	Cost      float64 `json:"cost"`
	Timestamp int64   `json:"timestamp"`
}

// Type-safe event constructors

// FromNotification builds the event for an engine notification. state is the
// committed state of the transaction that produced it. Unknown kinds are rejected.
func FromNotification(n domain.Notification, state domain.ProgressionState) (Event, error) {
	now := time.Now().Unix()

	switch n.Kind {
	case domain.NotificationUnlockCrossed:
		return newEvent(UnlockCrossed, UnlockCrossedPayloadV1{
			UnlockID:     string(n.UnlockID),
			PeakCurrency: state.PeakCurrency,
			Timestamp:    now,
		}), nil
	case domain.NotificationEndingReached:
		return newEvent(EndingReached, EndingReachedPayloadV1{
			PrestigeCurrency: state.PrestigeCurrency,
			PeakCurrency:     state.PeakCurrency,
			Timestamp:        now,
		}), nil
	case domain.NotificationRebirthCompleted:
		return newEvent(RebirthCompleted, RebirthCompletedPayloadV1{
			Gain:             n.PrestigeGain,
			PrestigeCurrency: state.PrestigeCurrency,
			PrestigeCount:    state.PrestigeCount,
			Timestamp:        now,
		}), nil
	case domain.NotificationPrestigeAvailableChanged:
		return newEvent(PrestigeAvailableChanged, PrestigeAvailableChangedPayloadV1{
			Gain:      n.PrestigeGain,
			Timestamp: now,
		}), nil
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownNotification, n.Kind)
	}
}

// NewUpgradePurchasedEvent creates a new upgrade purchase event
func NewUpgradePurchasedEvent(upgradeID string, level int, cost float64) Event {
	return newEvent(UpgradePurchased, UpgradePurchasedPayloadV1{
		UpgradeID: upgradeID,
		Level:     level,
		Cost:      cost,
		Timestamp: time.Now().Unix(),
	})
}

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously and in subscription order; they must not call
	// back into the engine that is publishing.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
