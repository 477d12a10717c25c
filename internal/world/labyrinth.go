package world

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Labyrinth is the terrain grid plus its item and hazard overlay. The grid is
// fixed; the key flag, key position and hazard set change during play.
type Labyrinth struct {
	Grid       *Grid
	KeyPresent bool
	KeyCoord   Coord
	Hearts     []Coord
	GolemCoord Coord
	Hazards    HazardSet
}

// NewLabyrinth assembles a labyrinth with the key present and no hazards lit.
func NewLabyrinth(grid *Grid, key Coord, hearts []Coord, golem Coord) *Labyrinth {
	return &Labyrinth{
		Grid:       grid,
		KeyPresent: true,
		KeyCoord:   key,
		Hearts:     hearts,
		GolemCoord: golem,
		Hazards:    mapset.New[Coord](),
	}
}

// RegenerateHazards replaces the hazard overlay with a fresh set. Nothing
// carries over between rounds.
func (l *Labyrinth) RegenerateHazards(rng *rand.Rand) error {
	hazards, err := GenerateHazards(l.Grid, rng)
	if err != nil {
		return err
	}
	l.Hazards = hazards
	return nil
}

// IsHazard returns true if the cell is burning this round.
func (l *Labyrinth) IsHazard(c Coord) bool {
	return l.Hazards.Has(c)
}

// IsHeart returns true if the cell holds a healing station.
func (l *Labyrinth) IsHeart(c Coord) bool {
	for _, h := range l.Hearts {
		if h == c {
			return true
		}
	}
	return false
}

// HazardCoords returns the burning cells in row-major order.
func (l *Labyrinth) HazardCoords() []Coord {
	return SortedCoords(l.Hazards)
}
