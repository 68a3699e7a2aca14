package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	messagefb "github.com/cbodonnell/tetris/flatbuffers/message"
	snapshotfb "github.com/cbodonnell/tetris/flatbuffers/snapshot"
	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed, err := compress(b)
	if err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	return compressed, nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress message: %v", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	messageType := builder.CreateString(m.Type)
	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddType(builder, messageType)
	messagefb.MessageAddSequence(builder, m.Sequence)
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)

	return builder.FinishedBytes(), nil
}

func DeserializeMessageFlatbuffer(b []byte) (message *Message, err error) {
	// the generated accessors panic on malformed buffers
	defer func() {
		if r := recover(); r != nil {
			message, err = nil, fmt.Errorf("malformed message buffer: %v", r)
		}
	}()

	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message = &Message{
		Type:     string(messageFlatbuffer.Type()),
		Sequence: messageFlatbuffer.Sequence(),
		Payload:  messageFlatbuffer.PayloadBytes(),
	}
	if message.Type == "" {
		return nil, fmt.Errorf("message has no type")
	}

	return message, nil
}

// SerializeSnapshot encodes a snapshot as a compressed flatbuffer.
func SerializeSnapshot(snapshot *types.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	builder := flatbuffers.NewBuilder(512)
	offset := SerializeSnapshotFlatbuffer(builder, snapshot)
	builder.Finish(offset)

	compressed, err := compress(builder.FinishedBytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	return compressed, nil
}

// DeserializeSnapshot decodes the output of SerializeSnapshot.
func DeserializeSnapshot(data []byte) (*types.Snapshot, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot: %v", err)
	}

	snapshot, err := DeserializeSnapshotFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %v", err)
	}
	return snapshot, nil
}

func SerializeSnapshotFlatbuffer(builder *flatbuffers.Builder, snapshot *types.Snapshot) flatbuffers.UOffsetT {
	sessionID := builder.CreateString(snapshot.SessionID)

	cells := make([]byte, 0, constants.Rows*constants.Cols)
	for r := range snapshot.Board {
		cells = append(cells, snapshot.Board[r][:]...)
	}
	board := builder.CreateByteVector(cells)

	current := serializePiece(builder, snapshot.Current)
	ghost := serializePiece(builder, snapshot.Ghost)
	next := serializePiece(builder, snapshot.Next)
	held := serializePiece(builder, snapshot.Held)

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddSessionId(builder, sessionID)
	snapshotfb.SnapshotAddSequence(builder, snapshot.Sequence)
	snapshotfb.SnapshotAddBoard(builder, board)
	if current != 0 {
		snapshotfb.SnapshotAddCurrent(builder, current)
	}
	if ghost != 0 {
		snapshotfb.SnapshotAddGhost(builder, ghost)
	}
	if next != 0 {
		snapshotfb.SnapshotAddNext(builder, next)
	}
	if held != 0 {
		snapshotfb.SnapshotAddHeld(builder, held)
	}
	snapshotfb.SnapshotAddScore(builder, int64(snapshot.Score))
	snapshotfb.SnapshotAddLevel(builder, int32(snapshot.Level))
	snapshotfb.SnapshotAddLinesCleared(builder, int32(snapshot.LinesCleared))
	snapshotfb.SnapshotAddStatus(builder, byte(snapshot.Status))
	snapshotfb.SnapshotAddCanHold(builder, snapshot.CanHold)
	return snapshotfb.SnapshotEnd(builder)
}

// serializePiece returns 0 for a nil piece.
func serializePiece(builder *flatbuffers.Builder, p *types.Piece) flatbuffers.UOffsetT {
	if p == nil {
		return 0
	}
	snapshotfb.PieceStart(builder)
	snapshotfb.PieceAddType(builder, byte(p.Type))
	snapshotfb.PieceAddRow(builder, int16(p.Row))
	snapshotfb.PieceAddCol(builder, int16(p.Col))
	snapshotfb.PieceAddRotation(builder, byte(p.Rotation))
	return snapshotfb.PieceEnd(builder)
}

func DeserializeSnapshotFlatbuffer(b []byte) (snapshot *types.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			snapshot, err = nil, fmt.Errorf("malformed snapshot buffer: %v", r)
		}
	}()

	fb := snapshotfb.GetRootAsSnapshot(b, 0)
	cells := fb.BoardBytes()
	if len(cells) != constants.Rows*constants.Cols {
		return nil, fmt.Errorf("board has %d cells, want %d", len(cells), constants.Rows*constants.Cols)
	}

	snapshot = &types.Snapshot{
		SessionID:    string(fb.SessionId()),
		Sequence:     fb.Sequence(),
		Current:      pieceFromFlatbuffer(fb.Current(nil)),
		Ghost:        pieceFromFlatbuffer(fb.Ghost(nil)),
		Next:         pieceFromFlatbuffer(fb.Next(nil)),
		Held:         pieceFromFlatbuffer(fb.Held(nil)),
		Score:        int(fb.Score()),
		Level:        int(fb.Level()),
		LinesCleared: int(fb.LinesCleared()),
		Status:       types.GameStatus(fb.Status()),
		CanHold:      fb.CanHold(),
	}
	for r := 0; r < constants.Rows; r++ {
		copy(snapshot.Board[r][:], cells[r*constants.Cols:(r+1)*constants.Cols])
	}
	return snapshot, nil
}

func pieceFromFlatbuffer(fb *snapshotfb.Piece) *types.Piece {
	if fb == nil {
		return nil
	}
	return &types.Piece{
		Type:     types.TetrominoType(fb.Type()),
		Row:      int(fb.Row()),
		Col:      int(fb.Col()),
		Rotation: int(fb.Rotation()),
	}
}

// SerializeSnapshotJSON encodes a snapshot for the HTTP state route.
func SerializeSnapshotJSON(snapshot *types.Snapshot) ([]byte, error) {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %v", err)
	}
	return b, nil
}

// NewSnapshotMessage wraps a serialized snapshot in a message envelope.
func NewSnapshotMessage(snapshot *types.Snapshot) (*Message, error) {
	payload, err := SerializeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:     MessageTypeSnapshot,
		Sequence: snapshot.Sequence,
		Payload:  payload,
	}, nil
}

// NewEventMessage wraps a JSON event summary in a message envelope.
func NewEventMessage(sequence uint64, summary *EventSummary) (*Message, error) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event summary: %v", err)
	}
	return &Message{
		Type:     MessageTypeEvent,
		Sequence: sequence,
		Payload:  payload,
	}, nil
}

func compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to write compressed data: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed data: %v", err)
	}
	return b, nil
}
