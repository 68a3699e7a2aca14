package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/pkg/workers"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func snapshotAt(sequence uint64) *types.Snapshot {
	return &types.Snapshot{SessionID: "session", Sequence: sequence, Level: 1, Status: types.GameStatusRunning, CanHold: true}
}

func TestBroadcastWorker_FlushEmpty(t *testing.T) {
	broadcaster := mocks.NewMockBroadcaster(t)
	w := NewBroadcastWorker(NewBroadcastWorkerOptions{
		EventQueue:  queue.NewInMemoryQueue(),
		Broadcaster: broadcaster,
	})

	require.NoError(t, w.Flush(context.Background()))
}

func TestBroadcastWorker_Flush(t *testing.T) {
	tests := []struct {
		name      string
		items     []interface{}
		wantTypes []string
		wantSeq   uint64
	}{
		{
			name: "start move and lock",
			items: []interface{}{
				game.Event{Action: game.ActionStart, Applied: true, StatusBefore: types.GameStatusIdle, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(1)},
				game.Event{Action: game.ActionMoveLeft, Applied: true, StatusBefore: types.GameStatusRunning, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(2)},
				game.Event{Action: game.ActionHardDrop, Applied: true, Locked: true, LinesCleared: 1, StatusBefore: types.GameStatusRunning, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(3)},
			},
			wantTypes: []string{messages.MessageTypeEvent, messages.MessageTypeEvent, messages.MessageTypeSnapshot},
			wantSeq:   3,
		},
		{
			name: "moves only",
			items: []interface{}{
				game.Event{Action: game.ActionMoveRight, Applied: true, StatusBefore: types.GameStatusRunning, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(4)},
				game.Event{Action: game.ActionRotateCW, Applied: true, StatusBefore: types.GameStatusRunning, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(5)},
			},
			wantTypes: []string{messages.MessageTypeSnapshot},
			wantSeq:   5,
		},
		{
			name: "unexpected items are skipped",
			items: []interface{}{
				"not an event",
				game.Event{Action: game.ActionTick, Applied: true, StatusBefore: types.GameStatusRunning, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(9)},
			},
			wantTypes: []string{messages.MessageTypeSnapshot},
			wantSeq:   9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queue.NewInMemoryQueue()
			for _, item := range tt.items {
				q.Enqueue(item)
			}

			var sent [][]byte
			broadcaster := mocks.NewMockBroadcaster(t)
			broadcaster.EXPECT().SendToAll(mock.Anything, mock.Anything).Run(func(ctx context.Context, b []byte) {
				sent = append(sent, b)
			}).Return(1)

			w := NewBroadcastWorker(NewBroadcastWorkerOptions{EventQueue: q, Broadcaster: broadcaster})
			require.NoError(t, w.Flush(context.Background()))
			assert.Zero(t, q.Size())

			require.Len(t, sent, len(tt.wantTypes))
			var last *messages.Message
			for i, b := range sent {
				msg, err := messages.DeserializeMessage(b)
				require.NoError(t, err)
				assert.Equal(t, tt.wantTypes[i], msg.Type)
				last = msg
			}

			snapshot, err := messages.DeserializeSnapshot(last.Payload)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeq, snapshot.Sequence)
		})
	}
}

func TestBroadcastWorker_EventSummary(t *testing.T) {
	q := queue.NewInMemoryQueue()
	q.Enqueue(game.Event{
		Action:       game.ActionTick,
		Applied:      false,
		Locked:       true,
		LinesCleared: 4,
		LevelBefore:  1,
		LevelAfter:   2,
		StatusBefore: types.GameStatusRunning,
		StatusAfter:  types.GameStatusRunning,
		Snapshot:     snapshotAt(12),
	})

	var sent [][]byte
	broadcaster := mocks.NewMockBroadcaster(t)
	broadcaster.EXPECT().SendToAll(mock.Anything, mock.Anything).Run(func(ctx context.Context, b []byte) {
		sent = append(sent, b)
	}).Return(0)

	w := NewBroadcastWorker(NewBroadcastWorkerOptions{EventQueue: q, Broadcaster: broadcaster})
	require.NoError(t, w.Flush(context.Background()))
	require.Len(t, sent, 2)

	msg, err := messages.DeserializeMessage(sent[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(12), msg.Sequence)

	var summary messages.EventSummary
	require.NoError(t, json.Unmarshal(msg.Payload, &summary))
	assert.Equal(t, messages.EventSummary{
		Action:       "tick",
		Locked:       true,
		LinesCleared: 4,
		LevelBefore:  1,
		LevelAfter:   2,
		Status:       "running",
	}, summary)
}

func TestBroadcastWorker_Start(t *testing.T) {
	q := queue.NewInMemoryQueue()
	received := make(chan []byte, 8)
	broadcaster := mocks.NewMockBroadcaster(t)
	broadcaster.EXPECT().SendToAll(mock.Anything, mock.Anything).Run(func(ctx context.Context, b []byte) {
		received <- b
	}).Return(1)

	w := NewBroadcastWorker(NewBroadcastWorkerOptions{EventQueue: q, Broadcaster: broadcaster})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	q.Enqueue(game.Event{Action: game.ActionMoveLeft, Applied: true, StatusBefore: types.GameStatusRunning, StatusAfter: types.GameStatusRunning, Snapshot: snapshotAt(1)})

	select {
	case b := <-received:
		msg, err := messages.DeserializeMessage(b)
		require.NoError(t, err)
		assert.Equal(t, messages.MessageTypeSnapshot, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
