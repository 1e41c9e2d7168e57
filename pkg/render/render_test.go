package render_test

import (
	"errors"
	"image/color"
	"testing"

	mocks "github.com/cbodonnell/tictactoe/mocks/github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	circle := shapes.BuildCircle(geometry.Point{X: 100, Y: 100}, 33, 6, color.RGBA{A: 255}, 1)
	cross := shapes.BuildCross(geometry.Point{}, 33, 6, color.RGBA{A: 255}, 0.2)

	tests := []struct {
		name     string
		requests []render.Request
		setup    func(surface *mocks.Surface)
		wantErr  bool
	}{
		{
			name: "create then update in order",
			requests: []render.Request{
				{Handle: render.NewShape, Layer: render.LayerMarks, Outline: circle},
				{Handle: "preview", Layer: render.LayerPreview, Outline: cross},
			},
			setup: func(surface *mocks.Surface) {
				create := surface.EXPECT().Create(render.LayerMarks, circle).Return(render.Handle("mark"), nil).Once()
				surface.EXPECT().Update(render.Handle("preview"), cross).Return(nil).Once().NotBefore(create)
			},
		},
		{
			name:     "create error",
			requests: []render.Request{{Handle: render.NewShape, Layer: render.LayerMarks, Outline: circle}},
			setup: func(surface *mocks.Surface) {
				surface.EXPECT().Create(render.LayerMarks, circle).Return(render.NewShape, errors.New("full")).Once()
			},
			wantErr: true,
		},
		{
			name: "update error stops the batch",
			requests: []render.Request{
				{Handle: "missing", Outline: cross},
				{Handle: render.NewShape, Layer: render.LayerMarks, Outline: circle},
			},
			setup: func(surface *mocks.Surface) {
				surface.EXPECT().Update(render.Handle("missing"), cross).Return(render.ErrUnknownHandle).Once()
			},
			wantErr: true,
		},
		{
			name:  "empty batch",
			setup: func(surface *mocks.Surface) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := mocks.NewSurface(t)
			tt.setup(surface)

			err := render.Apply(surface, tt.requests)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInMemorySurface(t *testing.T) {
	surface := render.NewInMemorySurface()
	outline := shapes.BuildCircle(geometry.Point{}, 10, 1, color.RGBA{}, 1)

	preview, err := surface.Create(render.LayerPreview, outline)
	require.NoError(t, err)
	bar, err := surface.Create(render.LayerGrid, outline)
	require.NoError(t, err)
	assert.NotEqual(t, preview, bar)

	shapesByLayer := surface.Shapes()
	require.Len(t, shapesByLayer, 2)
	assert.Equal(t, bar, shapesByLayer[0].Handle)
	assert.Equal(t, preview, shapesByLayer[1].Handle)

	moved := outline.Translate(5, 5)
	require.NoError(t, surface.Update(preview, moved))
	assert.Equal(t, moved, surface.Get(preview).Outline)
	assert.Equal(t, 1, surface.Get(preview).Updates)

	assert.ErrorIs(t, surface.Update("unknown", outline), render.ErrUnknownHandle)

	require.NoError(t, surface.Clear())
	assert.Empty(t, surface.Shapes())
	assert.Nil(t, surface.Get(preview))
}
