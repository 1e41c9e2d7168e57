package objects

import (
	"image/color"

	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/shapes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Viewport maps world coordinates, Y up and centred on the origin, onto the
// screen, Y down with the origin at the top-left corner.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) ToScreen(p geometry.Point) (float32, float32) {
	return float32(v.Width/2 + p.X), float32(v.Height/2 - p.Y)
}

// ToWorld is the inverse of ToScreen.
func (v Viewport) ToWorld(x, y int) geometry.Point {
	return geometry.Point{X: float64(x) - v.Width/2, Y: v.Height/2 - float64(y)}
}

// ShapeObject draws a vector outline.
type ShapeObject struct {
	*BaseObject

	outline  shapes.Outline
	viewport Viewport
}

func NewShapeObject(id string, zIndex int, outline shapes.Outline, viewport Viewport) *ShapeObject {
	return &ShapeObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		outline:  outline,
		viewport: viewport,
	}
}

func (o *ShapeObject) SetOutline(outline shapes.Outline) {
	o.outline = outline
}

func (o *ShapeObject) Draw(screen *ebiten.Image) {
	for _, s := range o.outline.Strokes {
		clr := withOpacity(s.Color, s.Opacity)
		switch s.Kind {
		case shapes.StrokeSegment:
			x0, y0 := o.viewport.ToScreen(s.From)
			x1, y1 := o.viewport.ToScreen(s.To)
			vector.StrokeLine(screen, x0, y0, x1, y1, float32(s.Width), clr, true)
		case shapes.StrokeCircle:
			cx, cy := o.viewport.ToScreen(s.Center)
			vector.StrokeCircle(screen, cx, cy, float32(s.Radius), float32(s.Width), clr, true)
		case shapes.StrokeRect:
			x, y := o.viewport.ToScreen(s.Center.Add(-s.Width/2, s.Height/2))
			vector.DrawFilledRect(screen, x, y, float32(s.Width), float32(s.Height), clr, false)
		}
	}
}

// withOpacity scales a straight-alpha colour into a premultiplied one.
func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(float64(v)*opacity + 0.5)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
