package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CozyGarden_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestFromNotification(t *testing.T) {
	state := domain.NewProgressionState()
	state.PeakCurrency = 2500
	state.PrestigeCurrency = 3
	state.PrestigeCount = 2

	unlock, err := FromNotification(domain.UnlockCrossed(domain.UnlockZeze), state)
	require.NoError(t, err)
	assert.Equal(t, UnlockCrossed, unlock.Type)
	assert.Equal(t, EventSchemaVersion, unlock.Version)
	payload, err := DecodePayload[UnlockCrossedPayloadV1](unlock.Payload)
	require.NoError(t, err)
	assert.Equal(t, "zeze", payload.UnlockID)
	assert.Equal(t, 2500.0, payload.PeakCurrency)

	ending, err := FromNotification(domain.EndingReached(), state)
	require.NoError(t, err)
	assert.Equal(t, EndingReached, ending.Type)

	rebirth, err := FromNotification(domain.RebirthCompleted(2), state)
	require.NoError(t, err)
	assert.Equal(t, RebirthCompleted, rebirth.Type)
	rp, err := DecodePayload[RebirthCompletedPayloadV1](rebirth.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, rp.Gain)
	assert.Equal(t, 3, rp.PrestigeCurrency)
	assert.Equal(t, 2, rp.PrestigeCount)

	gain, err := FromNotification(domain.PrestigeAvailableChanged(0), state)
	require.NoError(t, err)
	assert.Equal(t, PrestigeAvailableChanged, gain.Type)
	gp, err := DecodePayload[PrestigeAvailableChangedPayloadV1](gain.Payload)
	require.NoError(t, err)
	assert.Equal(t, 0, gp.Gain)
}

func TestFromNotification_RejectsUnknownKind(t *testing.T) {
	_, err := FromNotification(domain.Notification{Kind: "confetti"}, domain.NewProgressionState())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownNotification)
	assert.Contains(t, err.Error(), "confetti")
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"upgrade_id": "softPaws", "level": float64(2), "cost": 20.0}

	payload, err := DecodePayload[UpgradePurchasedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, "softPaws", payload.UpgradeID)
	assert.Equal(t, 2, payload.Level)
	assert.Equal(t, 20.0, payload.Cost)
}
