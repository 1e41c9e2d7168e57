package shapes

import (
	"image/color"

	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
)

// Builder produces glyph and grid outlines sized for one board.
type Builder struct {
	glyphSize      float64
	strokeWidth    float64
	previewOpacity float64
	barColor       color.RGBA
	crossColor     color.RGBA
	circleColor    color.RGBA
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		glyphSize:      cfg.Board.SlotSize / 3,
		strokeWidth:    cfg.Style.StrokeWidth,
		previewOpacity: cfg.Style.PreviewOpacity,
		barColor:       cfg.Style.BarColor.Color(),
		crossColor:     cfg.Style.CrossColor.Color(),
		circleColor:    cfg.Style.CircleColor.Color(),
	}
}

// Glyph builds glyph at center with the given opacity.
func (b *Builder) Glyph(glyph Glyph, center geometry.Point, opacity float64) Outline {
	switch glyph {
	case GlyphCircle:
		return BuildCircle(center, b.glyphSize, b.strokeWidth, b.circleColor, opacity)
	default:
		return BuildCross(center, b.glyphSize, b.strokeWidth, b.crossColor, opacity)
	}
}

// Mark builds the permanent, fully opaque glyph.
func (b *Builder) Mark(glyph Glyph, center geometry.Point) Outline {
	return b.Glyph(glyph, center, 1)
}

// Preview builds the translucent glyph that follows the cursor.
func (b *Builder) Preview(glyph Glyph, center geometry.Point) Outline {
	return b.Glyph(glyph, center, b.previewOpacity)
}

// Bar builds one grid line.
func (b *Builder) Bar(bar geometry.Bar) Outline {
	return BuildBar(bar, b.barColor)
}
