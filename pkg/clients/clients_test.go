package clients

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientManager_AddRemove(t *testing.T) {
	cm := NewClientManager(nil)

	first, err := cm.AddClient(nil, "127.0.0.1:1")
	require.NoError(t, err)
	second, err := cm.AddClient(nil, "127.0.0.1:2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, cm.Count())
	assert.True(t, cm.Exists(first))

	client, err := cm.GetClient(second)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2", client.RemoteAddr)

	assert.True(t, cm.RemoveClient(first))
	assert.False(t, cm.RemoveClient(first))
	assert.False(t, cm.Exists(first))
	assert.Len(t, cm.GetClients(), 1)

	_, err = cm.GetClient(first)
	assert.Error(t, err)
}

func TestClientManager_GenerateUniqueID(t *testing.T) {
	tests := []struct {
		name    string
		taken   []uint32
		nextID  uint32
		retries int
		want    uint32
		wantErr bool
	}{
		{name: "free", nextID: 1, retries: 1, want: 1},
		{name: "skips taken", taken: []uint32{1, 2}, nextID: 1, retries: 5, want: 3},
		{name: "skips zero after wrap", nextID: 0, retries: 2, want: 1},
		{name: "exhausted", taken: []uint32{1, 2}, nextID: 1, retries: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := NewClientManager(nil)
			cm.nextID = tt.nextID
			for _, id := range tt.taken {
				cm.clients[id] = &Client{ID: id}
			}

			got, err := cm.GenerateUniqueID(tt.retries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientManager_Events(t *testing.T) {
	events := NewClientEventManager()
	received := make(chan ClientEvent, 2)
	events.RegisterHandler(func(event ClientEvent) {
		received <- event
	})
	cm := NewClientManager(events)

	id, err := cm.AddClient(nil, "spectator")
	require.NoError(t, err)
	cm.RemoveClient(id)

	got := map[ClientEventType]ClientEvent{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-received:
			got[ev.Type] = ev
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for client event")
		}
	}
	assert.Equal(t, id, got[ClientEventTypeConnect].ClientID)
	assert.Equal(t, "spectator", got[ClientEventTypeDisconnect].RemoteAddr)
}

func TestClientEventType_String(t *testing.T) {
	assert.Equal(t, "connect", ClientEventTypeConnect.String())
	assert.Equal(t, "disconnect", ClientEventTypeDisconnect.String())
	assert.Equal(t, "unknown", ClientEventType(0).String())
}
