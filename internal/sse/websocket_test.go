package sse

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCommands is a mock implementation of Commands
type MockCommands struct {
	mock.Mock
}

func (m *MockCommands) Pet(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCommands) Purchase(ctx context.Context, upgradeID string) error {
	return m.Called(ctx, upgradeID).Error(0)
}

func dialTestServer(t *testing.T, hub *Hub, cmds Commands) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(WebSocketHandler(hub, cmds))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))
	return evt
}

func TestWebSocketHandler_StreamsHubEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	conn := dialTestServer(t, hub, nil)
	assert.Equal(t, EventTypeConnected, readEvent(t, conn).Type)
	waitForClients(t, hub, 1)

	hub.Broadcast("rebirth.completed", map[string]int{"gain": 1})

	evt := readEvent(t, conn)
	assert.Equal(t, "rebirth.completed", evt.Type)
	assert.Equal(t, map[string]interface{}{"gain": float64(1)}, evt.Payload)
}

func TestWebSocketHandler_Commands(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	cmds := new(MockCommands)
	cmds.On("Pet", mock.Anything).Return(nil)
	cmds.On("Purchase", mock.Anything, "throne").Return(errors.New("insufficient funds"))

	conn := dialTestServer(t, hub, cmds)
	readEvent(t, conn)

	require.NoError(t, conn.WriteJSON(Command{Type: CommandPet}))
	require.NoError(t, conn.WriteJSON(Command{Type: CommandPurchase, UpgradeID: "throne"}))

	evt := readEvent(t, conn)
	assert.Equal(t, "error", evt.Type)
	payload, ok := evt.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, CommandPurchase, payload["command"])

	cmds.AssertCalled(t, "Pet", mock.Anything)
	cmds.AssertCalled(t, "Purchase", mock.Anything, "throne")
}

func TestWebSocketHandler_UnknownCommand(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	cmds := new(MockCommands)
	conn := dialTestServer(t, hub, cmds)
	readEvent(t, conn)

	require.NoError(t, conn.WriteJSON(Command{Type: "dance"}))

	evt := readEvent(t, conn)
	assert.Equal(t, "error", evt.Type)
	cmds.AssertNotCalled(t, "Pet", mock.Anything)
}
