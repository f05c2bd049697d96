package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second
)

// WebSocket connection settings
const (
	// pongWait is how long to wait for the next pong from the peer
	pongWait = 60 * time.Second

	// pingPeriod must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds inbound command frames
	maxMessageSize = 512
)

// QueryParamTypes is the comma separated event type filter
const QueryParamTypes = "types"

// Stream event types
const (
	// EventTypeConnected is the first event a client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"

	// EventTypeError answers a rejected websocket command
	EventTypeError = "error"
)

// Inbound websocket command types
const (
	CommandPet      = "pet"
	CommandPurchase = "purchase"
)

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgUpgradeFailed      = "Failed to upgrade websocket connection"
	LogMsgBadCommand         = "Ignoring malformed websocket command"
	LogMsgCommandRejected    = "Websocket command rejected"
	LogMsgSubscriberReady    = "Stream subscriber registered for event types"
)
