package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a terrain query outside the grid. Validated movement
// never produces it; seeing it means a programming error upstream.
var ErrOutOfBounds = errors.New("coordinate outside grid bounds")

// Grid is the static terrain layout. It never mutates after construction;
// only the hazard overlay on the labyrinth changes between rounds.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid builds a grid from cell codes. The layout must be rectangular and
// non-empty.
func NewGrid(codes [][]int) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, errors.New("grid layout is empty")
	}
	cols := len(codes[0])
	cells := make([][]Cell, len(codes))
	for x, row := range codes {
		if len(row) != cols {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d", x, len(row), cols)
		}
		cells[x] = make([]Cell, cols)
		for y, code := range row {
			if code < int(CellWall) || code > int(CellSpecial) {
				return nil, fmt.Errorf("grid cell (%d,%d) has unknown code %d", x, y, code)
			}
			cells[x][y] = Cell(code)
		}
	}
	return &Grid{rows: len(codes), cols: cols, cells: cells}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if the coordinate lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.rows && c.Y >= 0 && c.Y < g.cols
}

// CellAt returns the terrain cell at the coordinate, or ErrOutOfBounds.
func (g *Grid) CellAt(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return CellWall, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.cells[c.X][c.Y], nil
}

// IsPassable returns true if the coordinate is in bounds and walkable.
func (g *Grid) IsPassable(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[c.X][c.Y].IsPassable()
}

// FloorCells returns every plain-floor coordinate in row-major order.
func (g *Grid) FloorCells() []Coord {
	var floors []Coord
	for x := 0; x < g.rows; x++ {
		for y := 0; y < g.cols; y++ {
			if g.cells[x][y] == CellFloor {
				floors = append(floors, Coord{X: x, Y: y})
			}
		}
	}
	return floors
}

// Codes returns a copy of the layout as plain integer codes, the form the
// save file stores.
func (g *Grid) Codes() [][]int {
	codes := make([][]int, g.rows)
	for x := range codes {
		codes[x] = make([]int, g.cols)
		for y := range codes[x] {
			codes[x][y] = int(g.cells[x][y])
		}
	}
	return codes
}
