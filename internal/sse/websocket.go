package sse

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/CozyGarden_Go/internal/logger"
)

// Commands is the part of the engine a websocket client may drive: it is a
// pet-action source and a purchase-request source.
type Commands interface {
	Pet(ctx context.Context) error
	Purchase(ctx context.Context, upgradeID string) error
}

// Command is an inbound websocket frame
type Command struct {
	Type      string `json:"type"`
	UpgradeID string `json:"upgrade_id,omitempty"`
}

// CommandError is sent back when a command is rejected
type CommandError struct {
	Command string `json:"command"`
	Error   string `json:"error"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single local player; the UI may be served from another port in dev.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler streams hub events as JSON text frames and, when cmds is
// non-nil, accepts pet and purchase commands from the client.
func WebSocketHandler(hub *Hub, cmds Commands) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		filters := parseFilters(r)
		client := hub.Register(filters)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", "websocket",
			"filters", filters)

		ctx := logger.WithRequestID(context.Background(), client.ID)
		replies := make(chan Event, ClientEventBuffer)
		done := make(chan struct{})

		go func() {
			defer close(done)
			readPump(ctx, conn, cmds, replies)
		}()

		writePump(conn, client, filters, replies, done)

		hub.Unregister(client.ID)
		_ = conn.Close()
		<-done
		slog.Info(LogMsgClientDisconnected,
			"client_id", client.ID,
			"transport", "websocket")
	}
}

// readPump reads commands until the connection fails.
func readPump(ctx context.Context, conn *websocket.Conn, cmds Commands, replies chan<- Event) {
	log := logger.FromContext(ctx)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug(LogMsgClientDisconnected, "error", err)
			}
			return
		}
		if cmds == nil {
			continue
		}

		var cmd Command
		if err := json.Unmarshal(msg, &cmd); err != nil {
			log.Debug(LogMsgBadCommand, "error", err)
			continue
		}

		if err := runCommand(ctx, cmds, cmd); err != nil {
			log.Debug(LogMsgCommandRejected, "command", cmd.Type, "error", err)
			select {
			case replies <- Event{Type: EventTypeError, Timestamp: time.Now().UnixMilli(), Payload: CommandError{Command: cmd.Type, Error: err.Error()}}:
			default:
			}
		}
	}
}

var errUnknownCommand = errors.New("unknown command")

func runCommand(ctx context.Context, cmds Commands, cmd Command) error {
	switch cmd.Type {
	case CommandPet:
		return cmds.Pet(ctx)
	case CommandPurchase:
		return cmds.Purchase(ctx, cmd.UpgradeID)
	default:
		return errUnknownCommand
	}
}

// writePump forwards hub events and command replies, pinging the peer so a
// dead connection is noticed. It returns when the connection or hub closes.
func writePump(conn *websocket.Conn, client *Client, filters []string, replies <-chan Event, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(evt Event) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
		if err := conn.WriteJSON(evt); err != nil {
			slog.Debug(LogMsgWriteError, "error", err)
			return false
		}
		return true
	}

	if !write(connectedEvent(client, filters)) {
		return
	}

	for {
		select {
		case evt, ok := <-client.EventChannel:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(WriteTimeout))
				return
			}
			if !write(evt) {
				return
			}

		case evt := <-replies:
			if !write(evt) {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
