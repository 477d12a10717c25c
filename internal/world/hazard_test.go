package world

import (
	"math/rand"
	"testing"
)

func TestGenerateHazardsCountAndTerrain(t *testing.T) {
	g := mustGrid(t)
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		hazards, err := GenerateHazards(g, rng)
		if err != nil {
			t.Fatalf("GenerateHazards() error: %v", err)
		}
		if hazards.Size() != HazardCount {
			t.Fatalf("round %d: hazard set size = %d, want %d", round, hazards.Size(), HazardCount)
		}
		hazards.Each(func(c Coord) {
			cell, err := g.CellAt(c)
			if err != nil {
				t.Fatalf("hazard %s out of bounds: %v", c, err)
			}
			if cell != CellFloor {
				t.Errorf("hazard %s sits on %v, want plain floor", c, cell)
			}
		})
	}
}

func TestGenerateHazardsReproducibility(t *testing.T) {
	g := mustGrid(t)
	seed := int64(12345)

	h1, err := GenerateHazards(g, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("GenerateHazards() error: %v", err)
	}
	h2, err := GenerateHazards(g, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("GenerateHazards() error: %v", err)
	}

	c1, c2 := SortedCoords(h1), SortedCoords(h2)
	if len(c1) != len(c2) {
		t.Fatalf("hazard counts differ: %d != %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("hazard %d mismatch: %s != %s", i, c1[i], c2[i])
		}
	}
}

func TestGenerateHazardsFailsOnTinyGrid(t *testing.T) {
	g, err := NewGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}

	if _, err := GenerateHazards(g, rand.New(rand.NewSource(1))); err == nil {
		t.Error("GenerateHazards() on a 3-floor grid expected error, got nil")
	}
}

func TestSortedCoordsOrder(t *testing.T) {
	s := NewHazardSet(Coord{3, 1}, Coord{0, 5}, Coord{3, 0}, Coord{2, 2})

	got := SortedCoords(s)
	want := []Coord{{0, 5}, {2, 2}, {3, 0}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("SortedCoords() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedCoords()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
