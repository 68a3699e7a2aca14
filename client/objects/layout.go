package objects

import (
	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	CellSize float32 = 22

	BoardX float32 = (ScreenWidth - float32(constants.Cols)*CellSize) / 2
	BoardY float32 = 20

	PreviewSize float32 = 110
	HoldX       float32 = 60
	NextX       float32 = 470
	PreviewY    float32 = 40

	HUDX float32 = NextX
	HUDY float32 = PreviewY + PreviewSize + 40
)

// CellOrigin returns the top-left pixel of (row, col) on a grid drawn at (x, y).
func CellOrigin(x, y, cell float32, row, col int) (float32, float32) {
	return x + float32(col)*cell, y + float32(row)*cell
}

// PreviewOffset returns the pixel offset that centers a piece of type t,
// in its spawn rotation, inside a square box of the given size.
func PreviewOffset(t types.TetrominoType, box, cell float32) (float32, float32) {
	shape := types.Cells(t, 0)
	minRow, maxRow := shape[0].Row, shape[0].Row
	minCol, maxCol := shape[0].Col, shape[0].Col
	for _, o := range shape[1:] {
		minRow, maxRow = min(minRow, o.Row), max(maxRow, o.Row)
		minCol, maxCol = min(minCol, o.Col), max(maxCol, o.Col)
	}
	w := float32(maxCol-minCol+1) * cell
	h := float32(maxRow-minRow+1) * cell
	return (box-w)/2 - float32(minCol)*cell, (box-h)/2 - float32(minRow)*cell
}
