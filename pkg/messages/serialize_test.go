package messages

import (
	"encoding/json"
	"testing"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeSnapshot(t *testing.T) {
	board := types.Board{}
	board[19] = [10]uint8{1, 2, 3, 4, 5, 6, 7, 0, 1, 2}
	board[0][9] = 7

	tests := []struct {
		name     string
		snapshot *types.Snapshot
	}{
		{
			name:     "idle",
			snapshot: &types.Snapshot{Level: 1, Status: types.GameStatusIdle, CanHold: true},
		},
		{
			name: "running with every piece",
			snapshot: &types.Snapshot{
				SessionID:    "6f1c2f0e-0000-4000-8000-000000000001",
				Sequence:     42,
				Board:        board,
				Current:      &types.Piece{Type: types.TetrominoI, Row: 0, Col: -1, Rotation: 3},
				Ghost:        &types.Piece{Type: types.TetrominoI, Row: 15, Col: -1, Rotation: 3},
				Next:         &types.Piece{Type: types.TetrominoT, Row: 0, Col: 3},
				Held:         &types.Piece{Type: types.TetrominoZ, Row: 0, Col: 3},
				Score:        123456,
				Level:        4,
				LinesCleared: 31,
				Status:       types.GameStatusRunning,
				CanHold:      false,
			},
		},
		{
			name: "game over",
			snapshot: &types.Snapshot{
				SessionID: "done",
				Sequence:  9,
				Board:     board,
				Next:      &types.Piece{Type: types.TetrominoO, Row: 0, Col: 3},
				Score:     800,
				Level:     2,
				Status:    types.GameStatusGameOver,
				CanHold:   true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeSnapshot(tt.snapshot)
			require.NoError(t, err)

			got, err := DeserializeSnapshot(b)
			require.NoError(t, err)
			assert.True(t, tt.snapshot.Equal(got), "got %+v, want %+v", got, tt.snapshot)
		})
	}
}

func TestSerializeSnapshot_Nil(t *testing.T) {
	_, err := SerializeSnapshot(nil)
	assert.Error(t, err)
}

func TestDeserializeSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not compressed", data: []byte("definitely not zstd")},
		{name: "empty", data: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeserializeSnapshot(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestDeserializeSnapshot_WrongBoardSize(t *testing.T) {
	m := &Message{Type: MessageTypeEvent, Payload: []byte("{}")}
	b, err := SerializeMessage(m)
	require.NoError(t, err)

	// a message table has no board vector
	_, err = DeserializeSnapshot(b)
	assert.Error(t, err)
}

func TestSerializeDeserializeMessage(t *testing.T) {
	snapshot := &types.Snapshot{SessionID: "s", Sequence: 3, Level: 1, Status: types.GameStatusPaused}
	m, err := NewSnapshotMessage(snapshot)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeSnapshot, m.Type)
	assert.Equal(t, uint64(3), m.Sequence)

	b, err := SerializeMessage(m)
	require.NoError(t, err)

	got, err := DeserializeMessage(b)
	require.NoError(t, err)
	assert.Equal(t, m.Type, got.Type)
	assert.Equal(t, m.Sequence, got.Sequence)
	assert.Equal(t, []byte(m.Payload), []byte(got.Payload))

	inner, err := DeserializeSnapshot(got.Payload)
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(inner))
}

func TestDeserializeMessageFlatbuffer_MissingType(t *testing.T) {
	b, err := SerializeMessageFlatbuffer(&Message{Payload: []byte{1}})
	require.NoError(t, err)

	_, err = DeserializeMessageFlatbuffer(b)
	assert.Error(t, err)
}

func TestSerializeSnapshotJSON(t *testing.T) {
	snapshot := &types.Snapshot{
		SessionID: "s",
		Current:   &types.Piece{Type: types.TetrominoJ, Row: 2, Col: 4, Rotation: 1},
		Level:     1,
		Status:    types.GameStatusRunning,
	}
	b, err := SerializeSnapshotJSON(snapshot)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Equal(t, "running", fields["status"])
	assert.NotContains(t, fields, "held")

	var got types.Snapshot
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, snapshot.Equal(&got))
}

func TestNewEventMessage(t *testing.T) {
	summary := &EventSummary{Action: "hard-drop", Locked: true, LinesCleared: 2, LevelBefore: 1, LevelAfter: 1, Status: "running"}
	m, err := NewEventMessage(7, summary)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeEvent, m.Type)
	assert.Equal(t, uint64(7), m.Sequence)

	b, err := SerializeMessage(m)
	require.NoError(t, err)
	got, err := DeserializeMessage(b)
	require.NoError(t, err)

	var decoded EventSummary
	require.NoError(t, json.Unmarshal(got.Payload, &decoded))
	assert.Equal(t, *summary, decoded)
}
