package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CozyGarden_Go/internal/domain"
	"github.com/osse101/CozyGarden_Go/internal/event"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	onlyRebirth := hub.Register([]string{string(event.RebirthCompleted)})
	waitForClients(t, hub, 2)

	hub.Broadcast(string(event.UnlockCrossed), "zeze")

	select {
	case evt := <-all.EventChannel:
		assert.Equal(t, string(event.UnlockCrossed), evt.Type)
		assert.Equal(t, "zeze", evt.Payload)
		assert.NotEmpty(t, evt.ID)
	case <-time.After(time.Second):
		t.Fatal("expected event for unfiltered client")
	}

	select {
	case evt := <-onlyRebirth.EventChannel:
		t.Fatalf("filtered client received %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterAndStop(t *testing.T) {
	hub := NewHub()
	hub.Start()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, ok := <-client.EventChannel
	assert.False(t, ok)

	other := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Stop()
	hub.Stop()

	_, ok = <-other.EventChannel
	assert.False(t, ok)
}

func requireClosed(t *testing.T, client *Client) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-client.EventChannel:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("client %s channel left open", client.ID)
		}
	}
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	client := hub.Register(nil)
	requireClosed(t, client)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RegisterDuringStopClosesEveryClient(t *testing.T) {
	hub := NewHub()
	hub.Start()

	const n = 32
	clients := make(chan *Client, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clients <- hub.Register(nil)
		}()
	}
	hub.Stop()
	wg.Wait()
	close(clients)

	for client := range clients {
		requireClosed(t, client)
	}
}

func TestHub_ReplaysRetainedEvents(t *testing.T) {
	hub := NewHub(string(event.PrestigeAvailableChanged))
	hub.Start()
	defer hub.Stop()

	first := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Broadcast(string(event.PrestigeAvailableChanged), 1)
	hub.Broadcast(string(event.PrestigeAvailableChanged), 2)
	hub.Broadcast(string(event.UnlockCrossed), "zeze")

	for i := 0; i < 3; i++ {
		select {
		case <-first.EventChannel:
		case <-time.After(time.Second):
			t.Fatal("expected live events for the first client")
		}
	}

	late := hub.Register(nil)
	waitForClients(t, hub, 2)

	select {
	case evt := <-late.EventChannel:
		assert.Equal(t, string(event.PrestigeAvailableChanged), evt.Type)
		assert.Equal(t, 2, evt.Payload, "only the latest retained value is replayed")
	case <-time.After(time.Second):
		t.Fatal("expected retained event replay")
	}

	select {
	case evt := <-late.EventChannel:
		t.Fatalf("unexpected replay of %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_ReplayRespectsFilter(t *testing.T) {
	hub := NewHub(string(event.EndingReached))
	hub.Start()
	defer hub.Stop()

	hub.Broadcast(string(event.EndingReached), true)
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.retained[string(event.EndingReached)] != nil
	}, time.Second, 5*time.Millisecond)

	client := hub.Register([]string{string(event.RebirthCompleted)})
	waitForClients(t, hub, 1)

	select {
	case evt := <-client.EventChannel:
		t.Fatalf("filtered client received replay of %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "ending.reached", Payload: map[string]int{"hearts": 5}})
	require.NoError(t, err)

	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: abc\nevent: ending.reached\ndata: {"))
	assert.True(t, strings.HasSuffix(text, "\n\n"))
	assert.Contains(t, text, `"hearts":5`)
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	evt := notificationEvent(t, domain.UnlockCrossed(domain.UnlockBMO), domain.NewProgressionState())
	require.NoError(t, bus.Publish(context.Background(), evt))

	select {
	case got := <-client.EventChannel:
		assert.Equal(t, string(event.UnlockCrossed), got.Type)
		payload, ok := got.Payload.(event.UnlockCrossedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, "bmo", payload.UnlockID)
	case <-time.After(time.Second):
		t.Fatal("expected forwarded event")
	}
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		Handler(hub)(rec, req)
	}()

	waitForClients(t, hub, 1)
	hub.Broadcast(string(event.EndingReached), map[string]int{"hearts": 5})

	// Give the handler time to write before disconnecting.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: ending.reached")
}

func TestParseFilters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stream?types=unlock.crossed,%20ending.reached,,", nil)
	assert.Equal(t, []string{"unlock.crossed", "ending.reached"}, parseFilters(req))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/stream", nil)
	assert.Nil(t, parseFilters(req))
}

// notificationEvent converts a notification that is known to map to an event
func notificationEvent(t *testing.T, n domain.Notification, state domain.ProgressionState) event.Event {
	t.Helper()
	evt, err := event.FromNotification(n, state)
	require.NoError(t, err)
	return evt
}
