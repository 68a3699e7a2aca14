package types

import (
	"testing"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/stretchr/testify/assert"
)

func TestCells_FourDistinctOffsetsInBox(t *testing.T) {
	for _, tt := range AllTetrominoTypes {
		for rotation := 0; rotation < constants.RotationStates; rotation++ {
			shape := Cells(tt, rotation)
			seen := make(map[Offset]bool)
			for _, o := range shape {
				assert.GreaterOrEqual(t, o.Row, 0, "%s rotation %d", tt, rotation)
				assert.Less(t, o.Row, constants.PieceBoxSize, "%s rotation %d", tt, rotation)
				assert.GreaterOrEqual(t, o.Col, 0, "%s rotation %d", tt, rotation)
				assert.Less(t, o.Col, constants.PieceBoxSize, "%s rotation %d", tt, rotation)
				seen[o] = true
			}
			assert.Len(t, seen, constants.PieceCells, "%s rotation %d", tt, rotation)
		}
	}
}

func TestCells_RotationIsModuloFour(t *testing.T) {
	for _, tt := range AllTetrominoTypes {
		assert.Equal(t, Cells(tt, 1), Cells(tt, 5))
		assert.Equal(t, Cells(tt, 3), Cells(tt, -1))
	}
}

func TestCells_InvalidTypePanics(t *testing.T) {
	assert.Panics(t, func() { Cells(0, 0) })
	assert.Panics(t, func() { Cells(8, 0) })
}

func TestPiece_Cells(t *testing.T) {
	p := Piece{Type: TetrominoT, Row: 5, Col: 2, Rotation: 0}
	want := [constants.PieceCells]Cell{{5, 3}, {6, 2}, {6, 3}, {6, 4}}
	assert.Equal(t, want, p.Cells())
}

func TestPiece_MovedDoesNotAlias(t *testing.T) {
	p := NewSpawnPiece(TetrominoL)
	moved := p.Moved(1, -1).WithRotation(5)

	assert.Equal(t, constants.SpawnRow, p.Row)
	assert.Equal(t, constants.SpawnCol, p.Col)
	assert.Equal(t, 0, p.Rotation)

	assert.Equal(t, constants.SpawnRow+1, moved.Row)
	assert.Equal(t, constants.SpawnCol-1, moved.Col)
	assert.Equal(t, 1, moved.Rotation)
}

func TestSnapshot_Copy(t *testing.T) {
	s := &Snapshot{
		SessionID: "abc",
		Current:   &Piece{Type: TetrominoI},
		Level:     1,
	}
	c := s.Copy()
	assert.True(t, s.Equal(c))

	c.Current.Row = 10
	c.Board[0][0] = 3
	assert.Equal(t, 0, s.Current.Row)
	assert.Equal(t, uint8(0), s.Board[0][0])
	assert.False(t, s.Equal(c))
}

func TestGameStatus_Text(t *testing.T) {
	for _, s := range []GameStatus{GameStatusIdle, GameStatusRunning, GameStatusPaused, GameStatusGameOver} {
		b, err := s.MarshalText()
		assert.NoError(t, err)
		var got GameStatus
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}
	var s GameStatus
	assert.Error(t, s.UnmarshalText([]byte("sleeping")))
}
