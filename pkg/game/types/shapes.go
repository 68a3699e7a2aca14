package types

import "github.com/cbodonnell/tetris/pkg/game/constants"

// Offset is a (row, col) position inside a piece's 4x4 local grid.
type Offset struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape is the set of cells a piece occupies in one rotation state.
type Shape [constants.PieceCells]Offset

// shapes is indexed by [type-1][rotation].
// Rotation 0 is the spawn orientation and each following state is a clockwise turn (SRS).
var shapes = [TetrominoTypeCount][constants.RotationStates]Shape{
	// I
	{
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	// O
	{
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	// T
	{
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	// S
	{
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	// Z
	{
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	// J
	{
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	// L
	{
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// NormalizeRotation maps any rotation, including negative ones, into [0, 3].
func NormalizeRotation(rotation int) int {
	r := rotation % constants.RotationStates
	if r < 0 {
		r += constants.RotationStates
	}
	return r
}

// Cells returns the local offsets of t in the given rotation.
// It panics if t is not a valid piece type.
func Cells(t TetrominoType, rotation int) Shape {
	if !t.Valid() {
		panic("invalid tetromino type")
	}
	return shapes[t-1][NormalizeRotation(rotation)]
}
