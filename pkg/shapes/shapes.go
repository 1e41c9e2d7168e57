// Package shapes builds renderer-agnostic vector outlines for the board.
package shapes

import (
	"image/color"
	"math"

	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
)

type StrokeKind uint8

const (
	StrokeSegment StrokeKind = iota
	StrokeCircle
	StrokeRect
)

// Stroke is one drawing primitive. Segments use From and To, circles use
// Center and Radius, filled rectangles use Center, Width and Height.
type Stroke struct {
	Kind    StrokeKind
	From    geometry.Point
	To      geometry.Point
	Center  geometry.Point
	Radius  float64
	Width   float64
	Height  float64
	Color   color.RGBA
	Opacity float64
}

// Outline is the complete description of one shape.
type Outline struct {
	Strokes []Stroke
}

// Translate returns a copy of o moved by (dx, dy).
func (o Outline) Translate(dx, dy float64) Outline {
	strokes := make([]Stroke, len(o.Strokes))
	for i, s := range o.Strokes {
		s.From = s.From.Add(dx, dy)
		s.To = s.To.Add(dx, dy)
		s.Center = s.Center.Add(dx, dy)
		strokes[i] = s
	}
	return Outline{Strokes: strokes}
}

type Glyph uint8

const (
	GlyphCross Glyph = iota
	GlyphCircle
)

func (g Glyph) String() string {
	switch g {
	case GlyphCross:
		return "Cross"
	case GlyphCircle:
		return "Circle"
	}
	return "Unknown"
}

// GlyphFor returns the symbol drawn for player: X for the first player,
// O for the second.
func GlyphFor(player types.Player) Glyph {
	if player == types.PlayerSecond {
		return GlyphCircle
	}
	return GlyphCross
}

// BuildCircle returns a circle outline around center.
func BuildCircle(center geometry.Point, radius, strokeWidth float64, clr color.RGBA, opacity float64) Outline {
	return Outline{
		Strokes: []Stroke{
			{
				Kind:    StrokeCircle,
				Center:  center,
				Radius:  radius,
				Width:   strokeWidth,
				Color:   clr,
				Opacity: opacity,
			},
		},
	}
}

// BuildCross returns the two diagonals of the square centred at center whose
// corners lie halfDiagonal away from it.
func BuildCross(center geometry.Point, halfDiagonal, strokeWidth float64, clr color.RGBA, opacity float64) Outline {
	// corner offset along each axis for a corner at distance halfDiagonal
	d := halfDiagonal / math.Sqrt2
	return Outline{
		Strokes: []Stroke{
			{
				Kind:    StrokeSegment,
				From:    center.Add(-d, d),
				To:      center.Add(d, -d),
				Width:   strokeWidth,
				Color:   clr,
				Opacity: opacity,
			},
			{
				Kind:    StrokeSegment,
				From:    center.Add(-d, -d),
				To:      center.Add(d, d),
				Width:   strokeWidth,
				Color:   clr,
				Opacity: opacity,
			},
		},
	}
}

// BuildBar returns a filled rectangle for one grid line.
func BuildBar(bar geometry.Bar, clr color.RGBA) Outline {
	return Outline{
		Strokes: []Stroke{
			{
				Kind:    StrokeRect,
				Center:  bar.Center,
				Width:   bar.Width,
				Height:  bar.Height,
				Color:   clr,
				Opacity: 1,
			},
		},
	}
}
