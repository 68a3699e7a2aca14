package objects

import (
	"image/color"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SnapshotFunc returns the snapshot to draw this frame. It may return nil.
type SnapshotFunc func() *types.Snapshot

// BoardObject draws the well: locked cells, the ghost and the falling piece.
type BoardObject struct {
	*BaseObject

	x, y     float32
	cell     float32
	snapshot SnapshotFunc
}

type NewBoardObjectOptions struct {
	// X is the x-coordinate of the top-left corner of the well.
	X float32
	// Y is the y-coordinate of the top-left corner of the well.
	Y float32
	// CellSize is the width and height of one cell.
	CellSize float32
	// Snapshot provides the state to draw.
	Snapshot SnapshotFunc
	// ZIndex is the z-index of the board.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	cell := opts.CellSize
	if cell <= 0 {
		cell = CellSize
	}
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		x:        opts.X,
		y:        opts.Y,
		cell:     cell,
		snapshot: opts.Snapshot,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	w := float32(constants.Cols) * o.cell
	h := float32(constants.Rows) * o.cell
	vector.DrawFilledRect(screen, o.x, o.y, w, h, WellColor, false)
	for c := 1; c < constants.Cols; c++ {
		x := o.x + float32(c)*o.cell
		vector.StrokeLine(screen, x, o.y, x, o.y+h, 1, GridColor, false)
	}
	for r := 1; r < constants.Rows; r++ {
		y := o.y + float32(r)*o.cell
		vector.StrokeLine(screen, o.x, y, o.x+w, y, 1, GridColor, false)
	}
	vector.StrokeRect(screen, o.x-1, o.y-1, w+2, h+2, 2, LabelColor, false)

	s := o.snapshot()
	if s == nil {
		return
	}

	for r := 0; r < constants.Rows; r++ {
		for c := 0; c < constants.Cols; c++ {
			if v := s.Board[r][c]; v != 0 {
				o.fillCell(screen, r, c, CellColor(v))
			}
		}
	}
	if s.Ghost != nil {
		for _, cell := range s.Ghost.Cells() {
			o.outlineCell(screen, cell.Row, cell.Col, GhostColor(s.Ghost.Type))
		}
	}
	if s.Current != nil {
		for _, cell := range s.Current.Cells() {
			o.fillCell(screen, cell.Row, cell.Col, CellColor(uint8(s.Current.Type)))
		}
	}
}

func (o *BoardObject) fillCell(screen *ebiten.Image, row, col int, clr color.Color) {
	if !onBoard(row, col) {
		return
	}
	x, y := CellOrigin(o.x, o.y, o.cell, row, col)
	vector.DrawFilledRect(screen, x+1, y+1, o.cell-2, o.cell-2, clr, false)
}

func (o *BoardObject) outlineCell(screen *ebiten.Image, row, col int, clr color.Color) {
	if !onBoard(row, col) {
		return
	}
	x, y := CellOrigin(o.x, o.y, o.cell, row, col)
	vector.StrokeRect(screen, x+2, y+2, o.cell-4, o.cell-4, 2, clr, false)
}

func onBoard(row, col int) bool {
	return row >= 0 && row < constants.Rows && col >= 0 && col < constants.Cols
}
