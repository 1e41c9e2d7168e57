// Package geometry converts between logical grid cells and world space.
//
// World space is centred on the middle cell with Y growing upward, so row 0
// (the top row) has the largest Y.
package geometry

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/game/types"
	"github.com/solarlune/resolv"
)

// SpaceCellSize is the side of one grid cell in collision space units.
// Collision space is scaled so that every grid cell maps to exactly one space
// cell whatever the slot size.
const SpaceCellSize = 64

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Bar is one grid line, described by its centre and extent.
type Bar struct {
	Center Point
	Width  float64
	Height float64
}

// Grid answers geometry queries for an N×N board. It holds no mutable state.
type Grid struct {
	size      int
	slotSize  float64
	thickness float64
	space     *resolv.Space
}

func NewGrid(board config.Board) *Grid {
	extent := board.GridSize * SpaceCellSize
	return &Grid{
		size:      board.GridSize,
		slotSize:  board.SlotSize,
		thickness: board.BarThickness,
		space:     resolv.NewSpace(extent, extent, SpaceCellSize, SpaceCellSize),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) SlotSize() float64 {
	return g.slotSize
}

// Space is the collision space whose cells coincide with the grid cells.
// Space coordinates grow right and down from the top-left grid corner, in
// SpaceCellSize units per grid cell.
func (g *Grid) Space() *resolv.Space {
	return g.space
}

// Center returns the starting cell (N/2, N/2).
func (g *Grid) Center() types.CellIndex {
	return types.CellIndex{Row: g.size / 2, Col: g.size / 2}
}

func (g *Grid) Contains(cell types.CellIndex) bool {
	return cell.Row >= 0 && cell.Row < g.size && cell.Col >= 0 && cell.Col < g.size
}

// Clamp returns the in-bounds cell closest to cell.
func (g *Grid) Clamp(cell types.CellIndex) types.CellIndex {
	return types.CellIndex{
		Row: clamp(cell.Row, 0, g.size-1),
		Col: clamp(cell.Col, 0, g.size-1),
	}
}

// CellToWorld returns the world position of the centre of cell.
func (g *Grid) CellToWorld(cell types.CellIndex) Point {
	half := g.size / 2
	return Point{
		X: float64(cell.Col-half) * g.slotSize,
		Y: float64(half-cell.Row) * g.slotSize,
	}
}

// WorldBounds returns the outer edges of the grid.
func (g *Grid) WorldBounds() (minX, maxX, minY, maxY float64) {
	topLeft := g.CellToWorld(types.CellIndex{Row: 0, Col: 0})
	bottomRight := g.CellToWorld(types.CellIndex{Row: g.size - 1, Col: g.size - 1})
	half := g.slotSize / 2
	return topLeft.X - half, bottomRight.X + half, bottomRight.Y - half, topLeft.Y + half
}

// Bars returns the internal grid lines: N-1 vertical bars followed by N-1
// horizontal bars, each spanning the whole grid.
func (g *Grid) Bars() []Bar {
	minX, maxX, minY, maxY := g.WorldBounds()
	length := float64(g.size) * g.slotSize
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	bars := make([]Bar, 0, 2*(g.size-1))
	for i := 1; i < g.size; i++ {
		bars = append(bars, Bar{
			Center: Point{X: minX + float64(i)*g.slotSize, Y: midY},
			Width:  g.thickness,
			Height: length,
		})
	}
	for i := 1; i < g.size; i++ {
		bars = append(bars, Bar{
			Center: Point{X: midX, Y: maxY - float64(i)*g.slotSize},
			Width:  length,
			Height: g.thickness,
		})
	}
	return bars
}

// CellAt returns the cell containing the world point p. The boolean is false
// when p lies outside the grid.
func (g *Grid) CellAt(p Point) (types.CellIndex, bool) {
	sx, sy := g.WorldToSpace(p)
	minX, maxX, minY, maxY := g.WorldBounds()
	if p.X < minX || p.X >= maxX || p.Y <= minY || p.Y > maxY {
		return types.CellIndex{}, false
	}
	col, row := g.space.WorldToSpace(sx, sy)
	cell := g.Clamp(types.CellIndex{Row: row, Col: col})
	return cell, true
}

// WorldToSpace converts a world point into collision space coordinates.
func (g *Grid) WorldToSpace(p Point) (float64, float64) {
	minX, _, _, maxY := g.WorldBounds()
	scale := SpaceCellSize / g.slotSize
	return (p.X - minX) * scale, (maxY - p.Y) * scale
}

// CellRect returns the collision space rectangle of cell.
func (g *Grid) CellRect(cell types.CellIndex) (x, y, w, h float64) {
	return float64(cell.Col * SpaceCellSize), float64(cell.Row * SpaceCellSize), SpaceCellSize, SpaceCellSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
