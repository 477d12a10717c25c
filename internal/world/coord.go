package world

import (
	"encoding/json"
	"fmt"
)

// Coord identifies a grid cell. X is the row index, Y the column index.
type Coord struct {
	X int
	Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate one cell away in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Offset()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Less orders coordinates row-major, for stable serialization of coordinate sets.
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// MarshalJSON encodes the coordinate as a two-element array, the shape the
// save file uses for every position field.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes a two-element array into the coordinate.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a two-element array: %w", err)
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all movement directions in menu order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction's menu label.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "unknown"
	}
}

// Offset returns the row and column delta for a one-cell step.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}
