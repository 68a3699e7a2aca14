package objects

import (
	"fmt"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const hudLineHeight = 28

// HUDLine is one label and value pair of the HUD.
type HUDLine struct {
	Label string
	Value string
}

// HUDLines formats the counters of a snapshot.
func HUDLines(s *types.Snapshot) []HUDLine {
	if s == nil {
		return nil
	}
	return []HUDLine{
		{Label: "SCORE", Value: fmt.Sprintf("%d", s.Score)},
		{Label: "LEVEL", Value: fmt.Sprintf("%d", s.Level)},
		{Label: "LINES", Value: fmt.Sprintf("%d", s.LinesCleared)},
	}
}

// HUDObject draws score, level and lines.
type HUDObject struct {
	*BaseObject

	x, y     float32
	snapshot SnapshotFunc
}

func NewHUDObject(id string, x, y float32, snapshot SnapshotFunc) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, nil),
		x:          x,
		y:          y,
		snapshot:   snapshot,
	}
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	for i, line := range HUDLines(o.snapshot()) {
		y := int(o.y) + i*2*hudLineHeight
		text.Draw(screen, line.Label, fonts.TTFSmallFont, int(o.x), y, LabelColor)
		text.Draw(screen, line.Value, fonts.TTFNormalFont, int(o.x), y+hudLineHeight-4, ValueColor)
	}
}
