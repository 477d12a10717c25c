package world

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// HazardCount is the number of cells set ablaze each round.
const HazardCount = 4

// HazardSet holds the coordinates burning during the current round.
type HazardSet = mapset.Set[Coord]

// NewHazardSet builds a hazard set from the given coordinates.
func NewHazardSet(coords ...Coord) HazardSet {
	s := mapset.New[Coord]()
	for _, c := range coords {
		s.Put(c)
	}
	return s
}

// GenerateHazards picks HazardCount distinct plain-floor cells uniformly at
// random. The result is deterministic for a seeded rng. Fails when the grid
// carries fewer plain-floor cells than HazardCount, which is a layout
// configuration error.
func GenerateHazards(g *Grid, rng *rand.Rand) (HazardSet, error) {
	floors := g.FloorCells()
	if len(floors) < HazardCount {
		return HazardSet{}, fmt.Errorf("grid has %d floor cells, need at least %d for hazards", len(floors), HazardCount)
	}
	hazards := mapset.New[Coord]()
	for _, i := range rng.Perm(len(floors))[:HazardCount] {
		hazards.Put(floors[i])
	}
	return hazards, nil
}

// SortedCoords flattens a hazard set into a row-major sorted slice, for
// logging and for stable serialization.
func SortedCoords(s HazardSet) []Coord {
	coords := make([]Coord, 0, s.Size())
	s.Each(func(c Coord) {
		coords = append(coords, c)
	})
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}
