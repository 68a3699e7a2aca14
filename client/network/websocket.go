package network

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/gorilla/websocket"
)

// SnapshotHandler receives every snapshot pushed by the spectator feed.
type SnapshotHandler func(snapshot *types.Snapshot)

// EventHandler receives every event summary pushed by the spectator feed.
type EventHandler func(sequence uint64, summary *messages.EventSummary)

// WSClient follows a game through the spectator websocket feed.
type WSClient struct {
	serverAddr      string
	snapshotHandler SnapshotHandler
	eventHandler    EventHandler

	connLock sync.Mutex
	conn     *websocket.Conn
	closed   bool
}

type NewWSClientOptions struct {
	// ServerAddr is the websocket URL, e.g. ws://localhost:8080/ws
	ServerAddr      string
	SnapshotHandler SnapshotHandler
	EventHandler    EventHandler
}

// NewWSClient creates a new WebSocket client.
func NewWSClient(opts NewWSClientOptions) *WSClient {
	return &WSClient{
		serverAddr:      opts.ServerAddr,
		snapshotHandler: opts.SnapshotHandler,
		eventHandler:    opts.EventHandler,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *WSClient) Connect(ctx context.Context) error {
	log.Info("Connecting to spectator feed at %s", c.serverAddr)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.serverAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}

	c.connLock.Lock()
	c.conn = conn
	c.closed = false
	c.connLock.Unlock()
	return nil
}

// HandleMessages reads the feed until ctx is done, the server closes the
// connection or Close is called. Handlers run on the calling goroutine in feed order.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	c.connLock.Lock()
	conn := c.conn
	c.connLock.Unlock()
	if conn == nil {
		return fmt.Errorf("not connected")
	}

	stop := context.AfterFunc(ctx, func() {
		c.Close()
	})
	defer stop()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if c.isClosed() {
				return &ErrConnectionClosedByClient{}
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("Error reading WebSocket message from %s: %v", conn.RemoteAddr().String(), err)
			}
			log.Trace("Connection closed for %s", conn.RemoteAddr().String())
			return &ErrConnectionClosedByServer{}
		}

		if err := c.handleMessage(message); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message.
func (c *WSClient) handleMessage(b []byte) error {
	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return fmt.Errorf("failed to deserialize message: %v", err)
	}
	log.Trace("Received message from spectator feed of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeSnapshot:
		snapshot, err := messages.DeserializeSnapshot(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to deserialize snapshot: %v", err)
		}
		if c.snapshotHandler != nil {
			c.snapshotHandler(snapshot)
		}
	case messages.MessageTypeEvent:
		summary := &messages.EventSummary{}
		if err := json.Unmarshal(msg.Payload, summary); err != nil {
			return fmt.Errorf("failed to deserialize event summary: %v", err)
		}
		if c.eventHandler != nil {
			c.eventHandler(msg.Sequence, summary)
		}
	default:
		return fmt.Errorf("received unexpected message type from spectator feed: %s", msg.Type)
	}

	return nil
}

func (c *WSClient) isClosed() bool {
	c.connLock.Lock()
	defer c.connLock.Unlock()
	return c.closed
}

// Close closes the WebSocket connection.
func (c *WSClient) Close() error {
	c.connLock.Lock()
	defer c.connLock.Unlock()
	if c.conn == nil || c.closed {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
