package sse

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CozyGarden_Go/internal/logger"
)

// keepaliveFrame is an SSE comment; EventSource clients ignore it
var keepaliveFrame = []byte(": " + EventTypeKeepalive + "\n\n")

// connectedEvent is the first frame every stream client receives
func connectedEvent(client *Client, filters []string) Event {
	return Event{
		ID:        client.ID,
		Type:      EventTypeConnected,
		Timestamp: time.Now().UnixMilli(),
		Payload: map[string]interface{}{
			"client_id": client.ID,
			"filters":   filters,
		},
	}
}

// parseFilters reads the comma separated "types" query parameter
func parseFilters(r *http.Request) []string {
	raw := r.URL.Query().Get(QueryParamTypes)
	if raw == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// Handler serves the notification stream as server-sent events
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		// send writes one frame under a deadline and pushes it to the client
		send := func(frame []byte) bool {
			if err := rc.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil && !errors.Is(err, http.ErrNotSupported) {
				return false
			}
			if _, err := w.Write(frame); err != nil {
				log.Debug(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			return true
		}

		filters := parseFilters(r)
		client := hub.Register(filters)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "transport", "sse", "filters", filters)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", "sse")
		}()

		hello, err := FormatSSEMessage(connectedEvent(client, filters))
		if err != nil || !send(hello) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				frame, err := FormatSSEMessage(event)
				if err != nil {
					log.Error(LogMsgWriteError, "error", err, "event_type", event.Type)
					continue
				}
				if !send(frame) {
					return
				}

			case <-ticker.C:
				if !send(keepaliveFrame) {
					return
				}
			}
		}
	}
}
