package network

import (
	"context"
	"testing"
	"time"

	"github.com/cbodonnell/tetris/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetworkManager_DefaultWriteTimeout(t *testing.T) {
	n := NewNetworkManager(NewNetworkManagerOptions{ClientManager: clients.NewClientManager(nil)})
	assert.Equal(t, DefaultWriteTimeout, n.writeTimeout)

	n = NewNetworkManager(NewNetworkManagerOptions{ClientManager: clients.NewClientManager(nil), WriteTimeout: time.Millisecond})
	assert.Equal(t, time.Millisecond, n.writeTimeout)
}

func TestSendToAll_DropsBrokenSpectators(t *testing.T) {
	cm := clients.NewClientManager(nil)
	n := NewNetworkManager(NewNetworkManagerOptions{ClientManager: cm})

	_, err := cm.AddClient(nil, "broken")
	require.NoError(t, err)
	require.Equal(t, 1, cm.Count())

	assert.Equal(t, 0, n.SendToAll(context.Background(), []byte{1, 2, 3}))
	assert.Equal(t, 0, cm.Count())
}

func TestSendToClient_Unknown(t *testing.T) {
	n := NewNetworkManager(NewNetworkManagerOptions{ClientManager: clients.NewClientManager(nil)})
	assert.Error(t, n.SendToClient(context.Background(), 42, []byte{1}))
}

func TestDisconnect_Idempotent(t *testing.T) {
	cm := clients.NewClientManager(nil)
	n := NewNetworkManager(NewNetworkManagerOptions{ClientManager: cm})

	id, err := cm.AddClient(nil, "spectator")
	require.NoError(t, err)

	n.Disconnect(id, 1000, "")
	n.Disconnect(id, 1000, "")
	assert.False(t, cm.Exists(id))
}
