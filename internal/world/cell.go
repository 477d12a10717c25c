// Package world provides the labyrinth terrain grid and hazard placement.
package world

// Cell is a terrain cell code.
type Cell int

const (
	// CellWall is impassable terrain.
	CellWall Cell = 0
	// CellFloor is plain passable floor. Hazards only ever appear on plain floor.
	CellFloor Cell = 1
	// CellSpecial is passable floor that suppresses the retreat rule on departure.
	CellSpecial Cell = 2
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == CellFloor || c == CellSpecial
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellFloor:
		return "floor"
	case CellSpecial:
		return "special-floor"
	default:
		return "unknown"
	}
}
