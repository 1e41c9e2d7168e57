package game

import (
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
	"github.com/cbodonnell/tictactoe/pkg/render"
	"github.com/cbodonnell/tictactoe/pkg/shapes"
	"github.com/solarlune/resolv"
)

// Ledger tracks whose turn it is and every mark placed so far.
type Ledger struct {
	grid    *geometry.Grid
	builder *shapes.Builder
	// enforceLegality rejects confirms on cells that already hold a mark.
	enforceLegality bool

	turn  types.TurnState
	marks []types.Mark
	// space holds one collision object per mark, used to count stacked marks.
	space *resolv.Space
	// preview is the handle of the translucent glyph that follows the cursor.
	preview render.Handle
}

type NewLedgerOptions struct {
	Grid            *geometry.Grid
	Builder         *shapes.Builder
	EnforceLegality bool
	// Preview is the handle of the preview glyph created at startup.
	Preview render.Handle
}

func NewLedger(opts NewLedgerOptions) *Ledger {
	extent := opts.Grid.Size() * geometry.SpaceCellSize
	return &Ledger{
		grid:            opts.Grid,
		builder:         opts.Builder,
		enforceLegality: opts.EnforceLegality,
		turn:            types.TurnState{Active: types.PlayerFirst},
		space:           resolv.NewSpace(extent, extent, geometry.SpaceCellSize, geometry.SpaceCellSize),
		preview:         opts.Preview,
	}
}

func (l *Ledger) Active() types.Player {
	return l.turn.Active
}

func (l *Ledger) Preview() render.Handle {
	return l.preview
}

// Marks returns a copy of the placed marks in placement order.
func (l *Ledger) Marks() []types.Mark {
	marks := make([]types.Mark, len(l.marks))
	copy(marks, l.marks)
	return marks
}

// MarksAt returns how many marks have been placed on cell.
func (l *Ledger) MarksAt(cell types.CellIndex) int {
	c := l.space.Cell(cell.Col, cell.Row)
	if c == nil {
		return 0
	}
	return len(c.Objects)
}

// PreviewRequest returns the update that draws the active player's preview
// glyph at position.
func (l *Ledger) PreviewRequest(position geometry.Point) render.Request {
	return render.Request{
		Handle:  l.preview,
		Layer:   render.LayerPreview,
		Outline: l.builder.Preview(shapes.GlyphFor(l.turn.Active), position),
	}
}

// Confirm places the active player's mark on cell and passes the turn.
// It returns the permanent mark followed by the preview glyph swap, drawn at
// previewPosition. When legality is enforced and cell is occupied nothing
// changes and ok is false.
func (l *Ledger) Confirm(cell types.CellIndex, previewPosition geometry.Point) (requests []render.Request, ok bool) {
	if !l.grid.Contains(cell) {
		return nil, false
	}
	if l.enforceLegality && l.MarksAt(cell) > 0 {
		return nil, false
	}

	owner := l.turn.Active
	requests = append(requests, render.Request{
		Handle:  render.NewShape,
		Layer:   render.LayerMarks,
		Outline: l.builder.Mark(shapes.GlyphFor(owner), l.grid.CellToWorld(cell)),
	})

	l.marks = append(l.marks, types.Mark{Cell: cell, Owner: owner})
	l.record(cell, owner)

	l.turn.Active = owner.Other()

	requests = append(requests, l.PreviewRequest(previewPosition))
	return requests, true
}

// record adds a collision object for the mark, inset by one unit so that it
// only occupies its own space cell.
func (l *Ledger) record(cell types.CellIndex, owner types.Player) {
	x, y, w, h := l.grid.CellRect(cell)
	l.space.Add(resolv.NewObject(x+1, y+1, w-2, h-2, owner.String()))
}
