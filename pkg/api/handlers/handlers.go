package handlers

import (
	"net/http"

	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/network"
	"github.com/cbodonnell/tetris/pkg/state"
	"nhooyr.io/websocket"
)

func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	}
}

// HandleState writes the latest snapshot as JSON.
func HandleState(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := stateManager.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}

		b, err := messages.SerializeSnapshotJSON(snapshot)
		if err != nil {
			log.Error("failed to encode snapshot: %v", err)
			http.Error(w, "Failed to encode snapshot", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}
}

// HandleSpectate upgrades the request to a websocket and registers it as a spectator.
// The latest snapshot is sent right away; later ones arrive from the broadcast worker.
// Anything the spectator sends is discarded.
func HandleSpectate(networkManager *network.NetworkManager, stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Error("Failed to accept WebSocket connection: %v", err)
			return
		}
		conn.SetReadLimit(messages.MessageBufferSize)

		clientID, err := networkManager.ClientManager.AddClient(conn, r.RemoteAddr)
		if err != nil {
			log.Error("Failed to add spectator from %s: %v", r.RemoteAddr, err)
			conn.Close(websocket.StatusTryAgainLater, "too many spectators")
			return
		}
		defer networkManager.Disconnect(clientID, websocket.StatusNormalClosure, "")
		log.Debug("Spectator %d connected from %s", clientID, r.RemoteAddr)

		ctx := r.Context()
		if err := sendLatest(r, networkManager, stateManager, clientID); err != nil {
			log.Warn("Failed to send initial snapshot to spectator %d: %v", clientID, err)
			return
		}

		for {
			if _, _, err := conn.Read(ctx); err != nil {
				log.Trace("Spectator %d closed: %v", clientID, err)
				return
			}
		}
	}
}

func sendLatest(r *http.Request, networkManager *network.NetworkManager, stateManager state.StateManager, clientID uint32) error {
	snapshot, err := stateManager.Get(r.Context())
	if err != nil {
		return err
	}
	msg, err := messages.NewSnapshotMessage(snapshot)
	if err != nil {
		return err
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return err
	}
	return networkManager.SendToClient(r.Context(), clientID, b)
}
