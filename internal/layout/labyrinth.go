package layout

import (
	"fmt"

	"github.com/samdwyer/labyrinth/internal/world"
)

// LabyrinthDef defines the shipped labyrinth loaded from JSON.
type LabyrinthDef struct {
	Grid        [][]int  `json:"grid"`        // Terrain codes, 4 rows by 8 columns
	KeyCoord    [2]int   `json:"keyCoord"`    // Starting key cell
	HeartCoords [][2]int `json:"heartCoords"` // Healing station cells
	GolemCoord  [2]int   `json:"golemCoord"`  // Exit guardian cell
}

// LoadLabyrinth loads the labyrinth definition from the embedded
// labyrinth.json file.
func LoadLabyrinth() (*LabyrinthDef, error) {
	def, err := Load[LabyrinthDef]("labyrinth.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// Build validates the definition and assembles a fresh labyrinth from it.
func (d *LabyrinthDef) Build() (*world.Labyrinth, error) {
	grid, err := world.NewGrid(d.Grid)
	if err != nil {
		return nil, fmt.Errorf("invalid labyrinth grid: %w", err)
	}
	hearts := make([]world.Coord, len(d.HeartCoords))
	for i, h := range d.HeartCoords {
		hearts[i] = world.Coord{X: h[0], Y: h[1]}
	}
	key := world.Coord{X: d.KeyCoord[0], Y: d.KeyCoord[1]}
	golem := world.Coord{X: d.GolemCoord[0], Y: d.GolemCoord[1]}
	for name, c := range map[string]world.Coord{"key": key, "golem": golem} {
		if !grid.IsPassable(c) {
			return nil, fmt.Errorf("%s coordinate %s is not on passable terrain", name, c)
		}
	}
	for _, h := range hearts {
		if !grid.IsPassable(h) {
			return nil, fmt.Errorf("heart coordinate %s is not on passable terrain", h)
		}
	}
	return world.NewLabyrinth(grid, key, hearts, golem), nil
}

// MustBuildLabyrinth loads and builds the shipped labyrinth, panicking on
// error. The embedded definition is validated by tests, so a failure here
// means a broken build.
func MustBuildLabyrinth() *world.Labyrinth {
	def, err := LoadLabyrinth()
	if err != nil {
		panic(err)
	}
	lab, err := def.Build()
	if err != nil {
		panic(err)
	}
	return lab
}
