package main

import (
	"strings"
	"testing"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderSnapshot(t *testing.T) {
	s := &types.Snapshot{
		Sequence: 7,
		Status:   types.GameStatusRunning,
		Score:    120,
		Level:    2,
		Current:  &types.Piece{Type: types.TetrominoO, Row: 0, Col: 3},
		Next:     &types.Piece{Type: types.TetrominoT},
	}
	s.Board[constants.Rows-1][0] = uint8(types.TetrominoI)

	out := RenderSnapshot(s)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, "#7 running  score 120  level 2  lines 0", lines[0])
	assert.Equal(t, "| . . . . O O . . . . |", lines[1])
	assert.Equal(t, "| I . . . . . . . . . |", lines[constants.Rows])
	assert.Equal(t, "next T", lines[len(lines)-1])
	// the board of the snapshot itself is untouched
	assert.Equal(t, uint8(0), s.Board[0][4])
}
