package network

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/tetris/pkg/clients"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"nhooyr.io/websocket"
)

const (
	// DefaultWriteTimeout bounds a single write to a spectator
	DefaultWriteTimeout = 2 * time.Second
)

// NetworkManager delivers messages to every connected spectator.
type NetworkManager struct {
	ClientManager *clients.ClientManager
	writeTimeout  time.Duration
}

type NewNetworkManagerOptions struct {
	ClientManager *clients.ClientManager
	// WriteTimeout is how long a write may block before the spectator is dropped
	WriteTimeout time.Duration
}

func NewNetworkManager(options NewNetworkManagerOptions) *NetworkManager {
	writeTimeout := options.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &NetworkManager{
		ClientManager: options.ClientManager,
		writeTimeout:  writeTimeout,
	}
}

// SendToAll writes b to every spectator. Spectators that fail or time out are disconnected.
// It returns the number of spectators the write reached.
func (n *NetworkManager) SendToAll(ctx context.Context, b []byte) int {
	sent := 0
	for _, client := range n.ClientManager.GetClients() {
		if err := n.sendToClient(ctx, client, b); err != nil {
			log.Warn("Dropping spectator %d: %v", client.ID, err)
			n.Disconnect(client.ID, websocket.StatusPolicyViolation, "write failed")
			continue
		}
		sent++
	}
	return sent
}

// SendToClient writes b to a single spectator.
func (n *NetworkManager) SendToClient(ctx context.Context, clientID uint32, b []byte) error {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("failed to get client %d: %v", clientID, err)
	}

	if err := n.sendToClient(ctx, client, b); err != nil {
		return fmt.Errorf("failed to send message to client %d: %v", clientID, err)
	}

	return nil
}

func (n *NetworkManager) sendToClient(ctx context.Context, client *clients.Client, b []byte) error {
	if client.WSConn == nil {
		return fmt.Errorf("client %d has no connection", client.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, n.writeTimeout)
	defer cancel()
	if err := client.WSConn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// Disconnect removes a spectator and closes its connection.
func (n *NetworkManager) Disconnect(clientID uint32, code websocket.StatusCode, reason string) {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return
	}
	if !n.ClientManager.RemoveClient(clientID) {
		return
	}
	if client.WSConn != nil {
		client.WSConn.Close(code, reason)
	}
}

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}
