package game

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	queuemocks "github.com/cbodonnell/tictactoe/mocks/github.com/cbodonnell/tictactoe/pkg/queue"
	rendermocks "github.com/cbodonnell/tictactoe/mocks/github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/input"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/queue"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func press(code int) types.InputEvent {
	return types.InputEvent{RawCode: code, Pressed: true}
}

func release(code int) types.InputEvent {
	return types.InputEvent{RawCode: code, Pressed: false}
}

func newTestGame(t *testing.T, q queue.Queue, mutate func(cfg *config.Config)) *Game {
	cfg, err := config.Default()
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}
	g, err := NewGame(NewGameOptions{
		Config:     cfg,
		InputQueue: q,
		Logger:     log.New(&bytes.Buffer{}, "", 0, log.LogLevelTrace),
	})
	require.NoError(t, err)
	return g
}

func enqueue(t *testing.T, q queue.Queue, items ...interface{}) {
	for _, item := range items {
		require.NoError(t, q.Enqueue(item))
	}
}

func TestNewGame(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	_, err = NewGame(NewGameOptions{InputQueue: queue.NewInMemoryQueue(0)})
	assert.Error(t, err)

	_, err = NewGame(NewGameOptions{Config: cfg})
	assert.Error(t, err)

	cfg.Board.SlotSize = 0
	_, err = NewGame(NewGameOptions{Config: cfg, InputQueue: queue.NewInMemoryQueue(0)})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGame_Start(t *testing.T) {
	g := newTestGame(t, queue.NewInMemoryQueue(0), nil)
	surface := render.NewInMemorySurface()

	require.NoError(t, g.Start(surface))

	assert.Len(t, surface.Layer(render.LayerGrid), 4)
	previews := surface.Layer(render.LayerPreview)
	require.Len(t, previews, 1)
	assert.Equal(t, g.Ledger().Preview(), previews[0].Handle)

	// translucent cross for the first player at the centre
	strokes := previews[0].Outline.Strokes
	require.Len(t, strokes, 2)
	for _, stroke := range strokes {
		assert.Equal(t, shapes.StrokeSegment, stroke.Kind)
		assert.Equal(t, 0.2, stroke.Opacity)
	}
	assert.Equal(t, types.CellIndex{Row: 1, Col: 1}, g.Cursor().Cell())
	assert.Empty(t, surface.Layer(render.LayerMarks))
}

func TestGame_Tick_notStarted(t *testing.T) {
	g := newTestGame(t, queue.NewInMemoryQueue(0), nil)

	_, err := g.Tick()

	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestGame_Tick_scenario(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, nil)
	surface := render.NewInMemorySurface()
	require.NoError(t, g.Start(surface))
	preview := g.Ledger().Preview()

	assert.Equal(t, geometry.Point{X: 0, Y: 0}, g.Cursor().Position())

	// Up
	enqueue(t, q, press(input.KeyCodeUp))
	require.NoError(t, g.Update(surface))
	assert.Equal(t, types.CellIndex{Row: 0, Col: 1}, g.Cursor().Cell())
	assert.Equal(t, geometry.Point{X: 0, Y: 100}, g.Cursor().Position())

	// Confirm
	enqueue(t, q, press(input.KeyCodeSpace))
	require.NoError(t, g.Update(surface))
	marks := surface.Layer(render.LayerMarks)
	require.Len(t, marks, 1)
	require.Len(t, marks[0].Outline.Strokes, 2, "first mark is a cross")
	assert.Equal(t, types.PlayerSecond, g.Ledger().Active())

	// Right
	enqueue(t, q, press(input.KeyCodeRight))
	require.NoError(t, g.Update(surface))
	assert.Equal(t, types.CellIndex{Row: 0, Col: 2}, g.Cursor().Cell())
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, g.Cursor().Position())
	previewStrokes := surface.Get(preview).Outline.Strokes
	require.Len(t, previewStrokes, 1)
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, previewStrokes[0].Center, "preview follows the cursor")

	// Confirm
	enqueue(t, q, press(input.KeyCodeSpace))
	require.NoError(t, g.Update(surface))
	marks = surface.Layer(render.LayerMarks)
	require.Len(t, marks, 2)
	require.Len(t, marks[1].Outline.Strokes, 1)
	assert.Equal(t, shapes.StrokeCircle, marks[1].Outline.Strokes[0].Kind)
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, marks[1].Outline.Strokes[0].Center)
	assert.Equal(t, 1.0, marks[1].Outline.Strokes[0].Opacity)

	assert.Equal(t, []types.Mark{
		{Cell: types.CellIndex{Row: 0, Col: 1}, Owner: types.PlayerFirst},
		{Cell: types.CellIndex{Row: 0, Col: 2}, Owner: types.PlayerSecond},
	}, g.Ledger().Marks())
	assert.Equal(t, types.PlayerFirst, g.Ledger().Active())

	// the preview was updated in place: once per move, once per confirm
	assert.Len(t, surface.Layer(render.LayerPreview), 1)
	assert.Equal(t, 4, surface.Get(preview).Updates)
}

func TestGame_Tick_requests(t *testing.T) {
	tests := []struct {
		name         string
		items        []interface{}
		wantRequests int
		wantNew      int
		wantCell     types.CellIndex
	}{
		{
			name:         "no input",
			wantRequests: 0,
			wantCell:     types.CellIndex{Row: 1, Col: 1},
		},
		{
			name:         "releases are ignored",
			items:        []interface{}{release(input.KeyCodeUp), release(input.KeyCodeSpace)},
			wantRequests: 0,
			wantCell:     types.CellIndex{Row: 1, Col: 1},
		},
		{
			name:         "unrecognized codes are ignored",
			items:        []interface{}{press(13), press(81), press(0)},
			wantRequests: 0,
			wantCell:     types.CellIndex{Row: 1, Col: 1},
		},
		{
			name:         "clamped move still republishes the preview",
			items:        []interface{}{press(input.KeyCodeW), press(input.KeyCodeW), press(input.KeyCodeW)},
			wantRequests: 3,
			wantCell:     types.CellIndex{Row: 0, Col: 1},
		},
		{
			name:         "letter and arrow aliases",
			items:        []interface{}{press(input.KeyCodeD), press(input.KeyCodeDown), press(input.KeyCodeA), press(input.KeyCodeLeft)},
			wantRequests: 4,
			wantCell:     types.CellIndex{Row: 2, Col: 0},
		},
		{
			name:         "confirm emits mark and preview swap",
			items:        []interface{}{press(input.KeyCodeSpace)},
			wantRequests: 2,
			wantNew:      1,
			wantCell:     types.CellIndex{Row: 1, Col: 1},
		},
		{
			name:         "unexpected item types are skipped",
			items:        []interface{}{"noise", press(input.KeyCodeS)},
			wantRequests: 1,
			wantCell:     types.CellIndex{Row: 2, Col: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queue.NewInMemoryQueue(0)
			g := newTestGame(t, q, nil)
			require.NoError(t, g.Start(render.NewInMemorySurface()))
			enqueue(t, q, tt.items...)

			requests, err := g.Tick()
			require.NoError(t, err)

			assert.Len(t, requests, tt.wantRequests)
			created := 0
			for _, req := range requests {
				if req.IsNew() {
					created++
				} else {
					assert.Equal(t, g.Ledger().Preview(), req.Handle)
				}
			}
			assert.Equal(t, tt.wantNew, created)
			assert.Equal(t, tt.wantCell, g.Cursor().Cell())
			assert.Equal(t, 0, q.Size())
		})
	}
}

func TestGame_Tick_turnParity(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, nil)
	require.NoError(t, g.Start(render.NewInMemorySurface()))

	for k := 1; k <= 9; k++ {
		enqueue(t, q, press(input.KeyCodeSpace))
		_, err := g.Tick()
		require.NoError(t, err)
		want := types.PlayerFirst
		if k%2 == 1 {
			want = types.PlayerSecond
		}
		assert.Equal(t, want, g.Ledger().Active(), "after %d confirms", k)
	}
	// every confirm landed on the centre cell
	assert.Equal(t, 9, g.Ledger().MarksAt(types.CellIndex{Row: 1, Col: 1}))
}

func TestGame_Tick_enforceLegality(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, func(cfg *config.Config) {
		cfg.Board.EnforceLegality = true
	})
	require.NoError(t, g.Start(render.NewInMemorySurface()))

	enqueue(t, q, press(input.KeyCodeSpace), press(input.KeyCodeSpace))
	requests, err := g.Tick()
	require.NoError(t, err)

	assert.Len(t, requests, 2)
	assert.Len(t, g.Ledger().Marks(), 1)
	assert.Equal(t, types.PlayerSecond, g.Ledger().Active())
}

func TestGame_Tick_pointer(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, nil)
	surface := render.NewInMemorySurface()
	require.NoError(t, g.Start(surface))

	enqueue(t, q,
		types.PointerEvent{X: -120, Y: 130},
		types.PointerEvent{X: 400, Y: 0},
	)
	require.NoError(t, g.Update(surface))

	assert.Equal(t, types.CellIndex{Row: 0, Col: 0}, g.Cursor().Cell())
	assert.Equal(t, []types.Mark{{Cell: types.CellIndex{Row: 0, Col: 0}, Owner: types.PlayerFirst}}, g.Ledger().Marks())
	assert.Len(t, surface.Layer(render.LayerMarks), 1)
}

func TestGame_Tick_queueError(t *testing.T) {
	mockQueue := queuemocks.NewQueue(t)
	g := newTestGame(t, mockQueue, nil)
	require.NoError(t, g.Start(render.NewInMemorySurface()))

	mockQueue.EXPECT().ReadAllMessages().Return(nil, errors.New("boom")).Once()

	_, err := g.Tick()
	assert.Error(t, err)
}

func TestGame_Update_surface(t *testing.T) {
	mockQueue := queuemocks.NewQueue(t)
	mockSurface := rendermocks.NewSurface(t)
	g := newTestGame(t, mockQueue, nil)

	mockSurface.EXPECT().Create(render.LayerGrid, mock.Anything).Return(render.Handle("bar"), nil).Times(4)
	mockSurface.EXPECT().Create(render.LayerPreview, mock.Anything).Return(render.Handle("preview"), nil).Once()
	require.NoError(t, g.Start(mockSurface))

	mockQueue.EXPECT().ReadAllMessages().Return([]interface{}{press(input.KeyCodeSpace)}, nil).Once()
	mockSurface.EXPECT().Create(render.LayerMarks, mock.Anything).Return(render.Handle("mark-1"), nil).Once()
	mockSurface.EXPECT().Update(render.Handle("preview"), mock.Anything).Return(nil).Once()
	require.NoError(t, g.Update(mockSurface))

	mockQueue.EXPECT().ReadAllMessages().Return([]interface{}{press(input.KeyCodeLeft)}, nil).Once()
	mockSurface.EXPECT().Update(render.Handle("preview"), mock.Anything).Return(errors.New("gone")).Once()
	assert.Error(t, g.Update(mockSurface))
}

func TestGame_Reset(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, nil)
	surface := render.NewInMemorySurface()
	require.NoError(t, g.Start(surface))

	enqueue(t, q, press(input.KeyCodeRight), press(input.KeyCodeSpace))
	require.NoError(t, g.Update(surface))
	enqueue(t, q, press(input.KeyCodeUp))

	require.NoError(t, g.Reset(surface))

	assert.Equal(t, 0, q.Size())
	assert.Equal(t, types.CellIndex{Row: 1, Col: 1}, g.Cursor().Cell())
	assert.Equal(t, types.PlayerFirst, g.Ledger().Active())
	assert.Empty(t, g.Ledger().Marks())
	assert.Empty(t, surface.Layer(render.LayerMarks))
	assert.Len(t, surface.Layer(render.LayerGrid), 4)
	require.Len(t, surface.Layer(render.LayerPreview), 1)
	assert.Equal(t, g.Ledger().Preview(), surface.Layer(render.LayerPreview)[0].Handle)
}

func TestGame_State(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, nil)
	surface := render.NewInMemorySurface()
	require.NoError(t, g.Start(surface))

	enqueue(t, q, press(input.KeyCodeUp), press(input.KeyCodeSpace), press(input.KeyCodeSpace))
	require.NoError(t, g.Update(surface))

	state := g.State()
	assert.Equal(t, types.CellIndex{Row: 0, Col: 1}, state.Cursor)
	assert.Equal(t, geometry.Point{X: 0, Y: 100}, state.CursorPosition)
	assert.Equal(t, types.PlayerFirst, state.Active)
	assert.Len(t, state.Marks, 2)
	assert.Equal(t, 2, state.MarksAtCursor)

	// the snapshot does not follow later ticks
	enqueue(t, q, press(input.KeyCodeDown))
	require.NoError(t, g.Update(surface))
	assert.Equal(t, types.CellIndex{Row: 0, Col: 1}, state.Cursor)
	assert.Equal(t, types.CellIndex{Row: 1, Col: 1}, g.State().Cursor)
}

func TestGame_State_concurrentReaders(t *testing.T) {
	q := queue.NewInMemoryQueue(0)
	g := newTestGame(t, q, nil)
	surface := render.NewInMemorySurface()
	require.NoError(t, g.Start(surface))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				state := g.State()
				assert.True(t, g.Grid().Contains(state.Cursor))
			}
		}()
	}

	for i := 0; i < 50; i++ {
		enqueue(t, q, press(input.KeyCodeRight), press(input.KeyCodeSpace))
		require.NoError(t, g.Update(surface))
		if i%10 == 9 {
			require.NoError(t, g.Reset(surface))
		}
	}
	close(done)
	wg.Wait()

	assert.Empty(t, g.State().Marks)
}
