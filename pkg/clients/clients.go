package clients

import (
	"fmt"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
)

// Client represents a connected spectator
type Client struct {
	ID          uint32
	WSConn      *websocket.Conn
	RemoteAddr  string
	ConnectedAt time.Time
}

// ClientManager manages connected spectators
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
	nextID      uint32
	events      *ClientEventManager
}

// NewClientManager creates a new ClientManager.
// events may be nil if nobody listens for connects and disconnects.
func NewClientManager(events *ClientEventManager) *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
		nextID:  1,
		events:  events,
	}
}

// GetClients returns a list of all connected clients
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

// AddClient adds a new spectator to the manager and returns its ID
func (cm *ClientManager) AddClient(conn *websocket.Conn, remoteAddr string) (uint32, error) {
	cm.clientsLock.Lock()
	clientID, err := cm.GenerateUniqueID(ClientIDMaxRetries)
	if err != nil {
		cm.clientsLock.Unlock()
		return 0, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	cm.clients[clientID] = &Client{
		ID:          clientID,
		WSConn:      conn,
		RemoteAddr:  remoteAddr,
		ConnectedAt: time.Now(),
	}
	cm.clientsLock.Unlock()

	cm.trigger(ClientEvent{ClientID: clientID, Type: ClientEventTypeConnect, RemoteAddr: remoteAddr})
	return clientID, nil
}

// RemoveClient removes a spectator from the manager. It reports whether the client was present.
func (cm *ClientManager) RemoveClient(clientID uint32) bool {
	cm.clientsLock.Lock()
	client, exists := cm.clients[clientID]
	if exists {
		delete(cm.clients, clientID)
	}
	cm.clientsLock.Unlock()

	if exists {
		cm.trigger(ClientEvent{ClientID: clientID, Type: ClientEventTypeDisconnect, RemoteAddr: client.RemoteAddr})
	}
	return exists
}

// GetClient retrieves a client by its ID
func (cm *ClientManager) GetClient(clientID uint32) (*Client, error) {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	client, ok := cm.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("client %d not found", clientID)
	}
	return client, nil
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// GenerateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) GenerateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := cm.nextID
		cm.nextID++
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

func (cm *ClientManager) trigger(event ClientEvent) {
	if cm.events == nil {
		return
	}
	cm.events.Trigger(event)
}
