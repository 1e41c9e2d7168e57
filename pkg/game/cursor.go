package game

import (
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/cbodonnell/tictactoe/pkg/geometry"
)

// Cursor is the cell selection. Every transition clamps to the grid before
// it is committed, so the cell is always in bounds.
type Cursor struct {
	grid *geometry.Grid
	cell types.CellIndex
}

func NewCursor(grid *geometry.Grid) *Cursor {
	return &Cursor{
		grid: grid,
		cell: grid.Center(),
	}
}

func (c *Cursor) Cell() types.CellIndex {
	return c.cell
}

// Position returns the world position of the current cell.
func (c *Cursor) Position() geometry.Point {
	return c.grid.CellToWorld(c.cell)
}

// Apply moves the cursor one cell in the direction of action and returns the
// resulting world position. The position is returned for every action,
// including ones that do not move the cursor.
func (c *Cursor) Apply(action types.Action) geometry.Point {
	next := c.cell
	switch action {
	case types.ActionUp:
		next.Row--
	case types.ActionDown:
		next.Row++
	case types.ActionLeft:
		next.Col--
	case types.ActionRight:
		next.Col++
	}
	c.cell = c.grid.Clamp(next)
	return c.Position()
}

// MoveTo places the cursor on cell, clamped to the grid.
func (c *Cursor) MoveTo(cell types.CellIndex) geometry.Point {
	c.cell = c.grid.Clamp(cell)
	return c.Position()
}

// Reset returns the cursor to the centre cell.
func (c *Cursor) Reset() {
	c.cell = c.grid.Center()
}
