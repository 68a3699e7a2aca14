package objects

import (
	"image/color"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PieceFunc picks the piece to preview from a snapshot and reports whether it may be used.
type PieceFunc func(s *types.Snapshot) (p *types.Piece, usable bool)

// NextPiece previews the queued piece.
func NextPiece(s *types.Snapshot) (*types.Piece, bool) {
	return s.Next, true
}

// HeldPiece previews the hold slot, dimmed until a swap is allowed again.
func HeldPiece(s *types.Snapshot) (*types.Piece, bool) {
	return s.Held, s.CanHold
}

// PreviewObject draws one piece in a labelled box.
type PreviewObject struct {
	*BaseObject

	label    string
	x, y     float32
	size     float32
	cell     float32
	snapshot SnapshotFunc
	piece    PieceFunc
}

type NewPreviewObjectOptions struct {
	Label    string
	X        float32
	Y        float32
	Size     float32
	CellSize float32
	Snapshot SnapshotFunc
	Piece    PieceFunc
	ZIndex   int
}

func NewPreviewObject(id string, opts NewPreviewObjectOptions) *PreviewObject {
	return &PreviewObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		label:    opts.Label,
		x:        opts.X,
		y:        opts.Y,
		size:     opts.Size,
		cell:     opts.CellSize,
		snapshot: opts.Snapshot,
		piece:    opts.Piece,
	}
}

func (o *PreviewObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, o.x, o.y, o.size, o.size, PanelColor, false)
	text.Draw(screen, o.label, fonts.TTFSmallFont, int(o.x), int(o.y)-6, LabelColor)

	s := o.snapshot()
	if s == nil {
		return
	}
	p, usable := o.piece(s)
	if p == nil || !p.Type.Valid() {
		return
	}

	var clr color.Color = CellColor(uint8(p.Type))
	if !usable {
		clr = DimmedColor(p.Type)
	}
	dx, dy := PreviewOffset(p.Type, o.size, o.cell)
	for _, off := range types.Cells(p.Type, 0) {
		x, y := CellOrigin(o.x+dx, o.y+dy, o.cell, off.Row, off.Col)
		vector.DrawFilledRect(screen, x+1, y+1, o.cell-2, o.cell-2, clr, false)
	}
}
