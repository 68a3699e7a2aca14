package types

import "github.com/cbodonnell/tetris/pkg/game/constants"

// Cell is an absolute board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Piece is a tetromino placed on the board.
// Row and Col locate the top-left corner of its 4x4 bounding box.
// Pieces are values: every transition produces a new Piece.
type Piece struct {
	Type     TetrominoType `json:"type"`
	Row      int           `json:"row"`
	Col      int           `json:"col"`
	Rotation int           `json:"rotation"`
}

// NewSpawnPiece returns a piece of type t at the spawn position in rotation 0.
func NewSpawnPiece(t TetrominoType) Piece {
	return Piece{
		Type:     t,
		Row:      constants.SpawnRow,
		Col:      constants.SpawnCol,
		Rotation: 0,
	}
}

// Cells returns the absolute cells occupied by the piece.
func (p Piece) Cells() [constants.PieceCells]Cell {
	return CellsAt(p.Type, p.Rotation, p.Row, p.Col)
}

// Moved returns a copy of the piece translated by dr rows and dc columns.
func (p Piece) Moved(dr, dc int) Piece {
	p.Row += dr
	p.Col += dc
	return p
}

// WithRotation returns a copy of the piece in the given rotation.
func (p Piece) WithRotation(rotation int) Piece {
	p.Rotation = NormalizeRotation(rotation)
	return p
}

// CellsAt returns the absolute cells of a hypothetical placement.
func CellsAt(t TetrominoType, rotation, row, col int) [constants.PieceCells]Cell {
	var cells [constants.PieceCells]Cell
	for i, o := range Cells(t, rotation) {
		cells[i] = Cell{Row: row + o.Row, Col: col + o.Col}
	}
	return cells
}
