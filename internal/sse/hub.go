package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CozyGarden_Go/internal/metrics"
)

// Event is one frame delivered to stream clients
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected SSE or websocket client
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans garden notifications out to stream clients. The latest event of
// each retained type is replayed to clients as they connect, so a reopened
// page learns the current rebirth offer without waiting for it to change.
type Hub struct {
	clients    map[string]*Client
	retained   map[string]*Event
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a hub that replays the latest event of each retained type
func NewHub(retainedTypes ...string) *Hub {
	h := &Hub{
		clients:    make(map[string]*Client),
		retained:   make(map[string]*Event, len(retainedTypes)),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
	for _, t := range retainedTypes {
		h.retained[t] = nil
	}
	return h
}

// Start starts the broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
	})
	h.wg.Wait()

	h.mu.Lock()
	for id, client := range h.clients {
		close(client.EventChannel)
		delete(h.clients, id)
	}
	h.mu.Unlock()
	metrics.StreamClients.Set(0)
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.replay(client)
			metrics.StreamClients.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			metrics.StreamClients.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			if _, ok := h.retained[event.Type]; ok {
				e := event
				h.retained[event.Type] = &e
			}
			for _, client := range h.clients {
				if client.wants(event.Type) {
					deliver(client, event)
				}
			}
			h.mu.Unlock()

		case <-h.shutdown:
			return
		}
	}
}

// replay sends the retained events a new client is interested in.
// Caller must hold the mutex.
func (h *Hub) replay(client *Client) {
	for t, event := range h.retained {
		if event != nil && client.wants(t) {
			deliver(client, *event)
		}
	}
}

// deliver never blocks; a slow client misses the event
func deliver(client *Client, event Event) {
	select {
	case client.EventChannel <- event:
	default:
		metrics.StreamEventsDropped.WithLabelValues(metrics.StageClient).Inc()
	}
}

// Register adds a client interested in eventTypes, or in everything when empty
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client. It never blocks, so
// it is safe to call from inside an engine commit.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		metrics.StreamEventsDropped.WithLabelValues(metrics.StageBroadcast).Inc()
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event as a text/event-stream frame
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(event.ID)+len(event.Type)+len(data)+24)
	buf = append(buf, "id: "...)
	buf = append(buf, event.ID...)
	buf = append(buf, "\nevent: "...)
	buf = append(buf, event.Type...)
	buf = append(buf, "\ndata: "...)
	buf = append(buf, data...)
	buf = append(buf, "\n\n"...)
	return buf, nil
}
