package objects

import (
	"image/color"

	"github.com/cbodonnell/tetris/pkg/game/types"
)

// pieceColors is indexed by board cell value.
var pieceColors = [...]color.RGBA{
	{0x00, 0x00, 0x00, 0x00},
	{0x00, 0xf0, 0xf0, 0xff}, // I cyan
	{0xf0, 0xf0, 0x00, 0xff}, // O yellow
	{0xa0, 0x00, 0xf0, 0xff}, // T purple
	{0x00, 0xf0, 0x00, 0xff}, // S green
	{0xf0, 0x00, 0x00, 0xff}, // Z red
	{0x00, 0x00, 0xf0, 0xff}, // J blue
	{0xf0, 0xa0, 0x00, 0xff}, // L orange
}

var (
	BackgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	WellColor       = color.RGBA{0x1c, 0x1c, 0x28, 0xff}
	GridColor       = color.RGBA{0x2a, 0x2a, 0x3a, 0xff}
	PanelColor      = color.RGBA{0x24, 0x24, 0x34, 0xff}
	LabelColor      = color.RGBA{0xb0, 0xb0, 0xc0, 0xff}
	ValueColor      = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	unknownColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// CellColor returns the color of a board cell value. Empty cells are transparent.
func CellColor(v uint8) color.RGBA {
	if int(v) >= len(pieceColors) {
		return unknownColor
	}
	return pieceColors[v]
}

// GhostColor is the translucent outline color of a landing projection.
func GhostColor(t types.TetrominoType) color.NRGBA {
	c := CellColor(uint8(t))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x80}
}

// DimmedColor is used for a held piece that cannot be swapped yet.
func DimmedColor(t types.TetrominoType) color.NRGBA {
	c := CellColor(uint8(t))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x50}
}
