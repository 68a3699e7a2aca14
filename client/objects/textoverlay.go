package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var overlayBackdrop = color.NRGBA{0x00, 0x00, 0x00, 0xa0}

// TextOverlayObject dims the board area and centers a title with an optional subtitle.
type TextOverlayObject struct {
	*BaseObject

	title    string
	subtitle string
}

func NewTextOverlayObject(id string, title string, subtitle string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: 100,
		}),
		title:    title,
		subtitle: subtitle,
	}
}

// SetSubtitle replaces the second line of the overlay.
func (o *TextOverlayObject) SetSubtitle(subtitle string) {
	o.subtitle = subtitle
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayBackdrop, false)

	cy := float64(h) / 2
	drawCentered(screen, strings.ToUpper(o.title), fonts.TTFLargeFont, float64(w)/2, cy, color.White)
	if o.subtitle != "" {
		drawCentered(screen, o.subtitle, fonts.TTFSmallFont, float64(w)/2, cy+40, LabelColor)
	}
}

// drawCentered draws t with its baseline at y and centered horizontally on x.
func drawCentered(screen *ebiten.Image, t string, f font.Face, x, y float64, clr color.Color) {
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64((bounds.Max.X-bounds.Min.X)>>6)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, f, op)
}
