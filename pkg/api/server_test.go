package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/tetris/pkg/clients"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/network"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

type serverFixture struct {
	server         *httptest.Server
	stateManager   *state.InMemoryStateManager
	clientManager  *clients.ClientManager
	networkManager *network.NetworkManager
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	f := &serverFixture{
		stateManager:  state.NewInMemoryStateManager(),
		clientManager: clients.NewClientManager(nil),
	}
	f.networkManager = network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager: f.clientManager,
		WriteTimeout:  time.Second,
	})
	s := NewAPIServer(NewAPIServerOptions{
		StateManager:   f.stateManager,
		NetworkManager: f.networkManager,
	})
	f.server = httptest.NewServer(s.Handler())
	t.Cleanup(f.server.Close)
	return f
}

func (f *serverFixture) wsURL() string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
}

func TestRoutes(t *testing.T) {
	f := newServerFixture(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCORS   bool
	}{
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "state", method: http.MethodGet, path: "/state", wantStatus: http.StatusOK, wantCORS: true},
		{name: "state preflight", method: http.MethodOptions, path: "/state", wantStatus: http.StatusNoContent, wantCORS: true},
		{name: "health wrong method", method: http.MethodPost, path: "/healthz", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, f.server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCORS {
				assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestHealth(t *testing.T) {
	f := newServerFixture(t)

	resp, err := http.Get(f.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestState(t *testing.T) {
	f := newServerFixture(t)
	snapshot := &types.Snapshot{
		SessionID: "session",
		Sequence:  4,
		Current:   &types.Piece{Type: types.TetrominoT, Row: 3, Col: 3},
		Score:     120,
		Level:     1,
		Status:    types.GameStatusRunning,
		CanHold:   true,
	}
	snapshot.Board[19][0] = uint8(types.TetrominoI)
	require.NoError(t, f.stateManager.Set(context.Background(), snapshot))

	resp, err := http.Get(f.server.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got types.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, snapshot.Equal(&got))
}

func TestSpectate(t *testing.T) {
	f := newServerFixture(t)
	require.NoError(t, f.stateManager.Set(context.Background(), &types.Snapshot{SessionID: "session", Sequence: 1, Level: 1, Status: types.GameStatusRunning}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, f.wsURL(), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// the latest snapshot arrives as soon as the spectator connects
	typ, b, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageBinary, typ)
	msg, err := messages.DeserializeMessage(b)
	require.NoError(t, err)
	assert.Equal(t, messages.MessageTypeSnapshot, msg.Type)
	assert.Equal(t, uint64(1), msg.Sequence)
	assert.Equal(t, 1, f.clientManager.Count())

	// spectator input is ignored
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("hello")))

	next, err := messages.NewSnapshotMessage(&types.Snapshot{SessionID: "session", Sequence: 2, Level: 1, Status: types.GameStatusPaused})
	require.NoError(t, err)
	payload, err := messages.SerializeMessage(next)
	require.NoError(t, err)
	assert.Equal(t, 1, f.networkManager.SendToAll(ctx, payload))

	_, b, err = conn.Read(ctx)
	require.NoError(t, err)
	msg, err = messages.DeserializeMessage(b)
	require.NoError(t, err)
	snapshot, err := messages.DeserializeSnapshot(msg.Payload)
	require.NoError(t, err)
	assert.Equal(t, types.GameStatusPaused, snapshot.Status)

	conn.Close(websocket.StatusNormalClosure, "")
	assert.Eventually(t, func() bool {
		return f.clientManager.Count() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSpectate_ServerShutdown(t *testing.T) {
	stateManager := state.NewInMemoryStateManager()
	clientManager := clients.NewClientManager(nil)
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{ClientManager: clientManager})
	s := NewAPIServer(NewAPIServerOptions{
		Addr:           "127.0.0.1:0",
		StateManager:   stateManager,
		NetworkManager: networkManager,
	})

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		errs <- s.Start(ctx)
	}()
	cancel()

	select {
	case err := <-errs:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
