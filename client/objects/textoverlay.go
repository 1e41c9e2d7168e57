package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a line of text centred horizontally at a fixed
// distance from the top of the screen. The text is read on every draw.
type TextOverlayObject struct {
	*BaseObject

	face   font.Face
	text   func() string
	offset float64
}

func NewTextOverlayObject(id string, face font.Face, offset float64, text func() string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: 100,
		}),
		face:   face,
		text:   text,
		offset: offset,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t := o.text()
	if t == "" {
		return
	}
	bounds, _ := font.BoundString(o.face, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64((bounds.Max.X-bounds.Min.X)>>6)/2, o.offset)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, o.face, op)
}
