package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/input"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/cbodonnell/tictactoe/pkg/queue"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/shapes"
)

var ErrNotStarted = errors.New("game not started")

// Game owns the cursor and the ledger and turns queued input into shape
// updates, one Tick per frame.
type Game struct {
	// lock serializes draining the input queue with state mutation.
	lock sync.Mutex

	cfg        *config.Config
	grid       *geometry.Grid
	builder    *shapes.Builder
	inputQueue queue.Queue
	logger     *log.Logger

	cursor *Cursor
	ledger *Ledger
}

type NewGameOptions struct {
	Config *config.Config
	// InputQueue holds types.InputEvent and types.PointerEvent items.
	InputQueue queue.Queue
	// Logger defaults to the package default logger.
	Logger *log.Logger
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}
	if opts.InputQueue == nil {
		return nil, fmt.Errorf("input queue is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default().With("component", "game")
	}

	grid := geometry.NewGrid(opts.Config.Board)
	g := &Game{
		cfg:        opts.Config,
		grid:       grid,
		builder:    shapes.NewBuilder(opts.Config),
		inputQueue: opts.InputQueue,
		logger:     logger,
		cursor:     NewCursor(grid),
	}
	g.ledger = g.newLedger(render.NewShape)
	return g, nil
}

func (g *Game) newLedger(preview render.Handle) *Ledger {
	return NewLedger(NewLedgerOptions{
		Grid:            g.grid,
		Builder:         g.builder,
		EnforceLegality: g.cfg.Board.EnforceLegality,
		Preview:         preview,
	})
}

func (g *Game) Grid() *geometry.Grid {
	return g.grid
}

// Cursor returns the game cursor. It is mutated by Tick, so callers on
// another goroutine should read State instead.
func (g *Game) Cursor() *Cursor {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.cursor
}

// Ledger returns the current ledger, which Reset replaces. It is mutated by
// Tick, so callers on another goroutine should read State instead.
func (g *Game) Ledger() *Ledger {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.ledger
}

// State is a copy of the game state taken between ticks.
type State struct {
	Cursor         types.CellIndex `json:"cursor"`
	CursorPosition geometry.Point  `json:"cursorPosition"`
	Active         types.Player    `json:"active"`
	Marks          []types.Mark    `json:"marks"`
	// MarksAtCursor counts the marks stacked on the cursor cell.
	MarksAtCursor int `json:"marksAtCursor"`
}

func (g *Game) State() State {
	g.lock.Lock()
	defer g.lock.Unlock()

	cell := g.cursor.Cell()
	return State{
		Cursor:         cell,
		CursorPosition: g.cursor.Position(),
		Active:         g.ledger.Active(),
		Marks:          g.ledger.Marks(),
		MarksAtCursor:  g.ledger.MarksAt(cell),
	}
}

// Start draws the grid bars and creates the preview glyph for the first
// player at the cursor. It must be called once before the first Tick.
func (g *Game) Start(surface render.Surface) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.start(surface)
}

func (g *Game) start(surface render.Surface) error {
	for _, bar := range g.grid.Bars() {
		if _, err := surface.Create(render.LayerGrid, g.builder.Bar(bar)); err != nil {
			return fmt.Errorf("failed to create grid bar: %v", err)
		}
	}

	previewOutline := g.builder.Preview(shapes.GlyphFor(g.ledger.Active()), g.cursor.Position())
	preview, err := surface.Create(render.LayerPreview, previewOutline)
	if err != nil {
		return fmt.Errorf("failed to create preview glyph: %v", err)
	}
	g.ledger.preview = preview

	g.logger.Debug("Board started with %d bars, cursor at %s", len(g.grid.Bars()), g.cursor.Cell())
	return nil
}

// Reset clears surface and starts a new game with an empty ledger and the
// cursor at the centre. Pending input is dropped.
func (g *Game) Reset(surface render.Surface) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.inputQueue.ClearQueue()
	if err := surface.Clear(); err != nil {
		return fmt.Errorf("failed to clear surface: %v", err)
	}
	g.cursor.Reset()
	g.ledger = g.newLedger(render.NewShape)

	return g.start(surface)
}

// Tick drains the input queue in arrival order and returns the shape updates
// produced, in the order they must be applied.
func (g *Game) Tick() ([]render.Request, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.ledger.Preview() == render.NewShape {
		return nil, ErrNotStarted
	}

	items, err := g.inputQueue.ReadAllMessages()
	if err != nil {
		return nil, fmt.Errorf("failed to read input queue: %v", err)
	}

	var requests []render.Request
	for _, item := range items {
		switch event := item.(type) {
		case types.InputEvent:
			requests = append(requests, g.handleInputEvent(event)...)
		case types.PointerEvent:
			requests = append(requests, g.handlePointerEvent(event)...)
		default:
			g.logger.Warn("Unexpected input queue item of type %T", item)
		}
	}

	return requests, nil
}

// Update runs one Tick and applies the result to surface.
func (g *Game) Update(surface render.Surface) error {
	requests, err := g.Tick()
	if err != nil {
		return err
	}
	if err := render.Apply(surface, requests); err != nil {
		return fmt.Errorf("failed to apply shape updates: %v", err)
	}
	return nil
}

func (g *Game) handleInputEvent(event types.InputEvent) []render.Request {
	action, ok := input.ClassifyEvent(event)
	if !ok {
		return nil
	}
	if action == types.ActionConfirm {
		return g.confirm()
	}
	position := g.cursor.Apply(action)
	g.logger.Trace("Cursor %s to %s at %s", action, g.cursor.Cell(), position)
	return []render.Request{g.ledger.PreviewRequest(position)}
}

// handlePointerEvent selects the clicked cell and confirms it. Clicks
// outside the grid are ignored.
func (g *Game) handlePointerEvent(event types.PointerEvent) []render.Request {
	cell, ok := g.grid.CellAt(geometry.Point{X: event.X, Y: event.Y})
	if !ok {
		return nil
	}
	position := g.cursor.MoveTo(cell)
	requests := []render.Request{g.ledger.PreviewRequest(position)}
	return append(requests, g.confirm()...)
}

func (g *Game) confirm() []render.Request {
	cell := g.cursor.Cell()
	owner := g.ledger.Active()
	requests, ok := g.ledger.Confirm(cell, g.cursor.Position())
	if !ok {
		g.logger.Debug("Rejected %s mark on occupied cell %s", owner, cell)
		return nil
	}
	g.logger.Debug("Placed %s mark on cell %s, %s to move", owner, cell, g.ledger.Active())
	return requests
}
