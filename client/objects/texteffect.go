package objects

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextEffect is a short-lived label that floats upward and removes itself from its parent.
type TextEffect struct {
	*BaseObject

	text  string
	x     float64
	y     float64
	color color.Color
	rise  float64
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the center of the text.
	X float64
	// Y is the y-coordinate of the baseline of the text.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// Rise is the number of pixels the text moves up each tick.
	Rise float64
	// TTL is the number of ticks before the effect removes itself.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	baseObjectOpts := &NewBaseObjectOpts{
		ZIndex: opts.ZIndex,
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, baseObjectOpts),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		color:      clr,
		rise:       opts.Rise,
		ttl:        opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	o.y -= o.rise
	if o.ttl > 0 {
		o.ttl--
		if o.ttl == 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	drawCentered(screen, strings.ToUpper(o.text), fonts.TTFNormalFont, o.x, o.y, o.color)
}

// LineClearText is the popup label for a number of cleared lines.
func LineClearText(lines int) string {
	switch lines {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	case 4:
		return "Tetris!"
	}
	return ""
}
