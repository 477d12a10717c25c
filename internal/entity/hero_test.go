package entity

import (
	"testing"

	"github.com/samdwyer/labyrinth/internal/world"
)

func TestNewHeroDefaults(t *testing.T) {
	h := NewHero("Ada")

	if h.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", h.Name)
	}
	if h.Health != MaxHealth {
		t.Errorf("Health = %d, want %d", h.Health, MaxHealth)
	}
	if h.HasKey {
		t.Error("new hero should not hold the key")
	}
	if h.Pos != StartPosition {
		t.Errorf("Pos = %s, want %s", h.Pos, StartPosition)
	}
	if h.HealCharges != StartHealCharges {
		t.Errorf("HealCharges = %d, want %d", h.HealCharges, StartHealCharges)
	}
	if !h.IsAlive() {
		t.Error("new hero should be alive")
	}
}

func TestAttack(t *testing.T) {
	a := NewHero("Ada")
	b := NewHero("Bram")

	a.Attack(b)
	if b.Health != 4 {
		t.Errorf("target health = %d, want 4", b.Health)
	}

	// Health is uncapped below zero; liveness treats <= 0 as dead.
	b.Health = 0
	a.Attack(b)
	if b.Health != -1 {
		t.Errorf("target health = %d, want -1", b.Health)
	}
	if b.IsAlive() {
		t.Error("hero at negative health should be dead")
	}
}

func TestGrabKey(t *testing.T) {
	grid, err := world.NewGrid([][]int{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}
	lab := world.NewLabyrinth(grid, world.Coord{X: 0, Y: 1}, nil, world.Coord{X: 1, Y: 1})

	h := NewHero("Ada")
	h.GrabKey(lab)

	if !h.HasKey {
		t.Error("hero should hold the key")
	}
	if lab.KeyPresent {
		t.Error("labyrinth should no longer offer the key")
	}
}

func TestHealAtStation(t *testing.T) {
	h := NewHero("Ada")
	h.Health = 2

	if !h.HealAtStation() {
		t.Fatal("HealAtStation() = false, want true")
	}
	if h.Health != MaxHealth {
		t.Errorf("Health = %d, want %d", h.Health, MaxHealth)
	}

	if h.HealAtStation() {
		t.Error("HealAtStation() at full health = true, want false")
	}
}

func TestSelfHeal(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		charges     int
		wantApplied bool
		wantHealth  int
		wantCharges int
	}{
		{"wounded with charges", 3, 3, true, 4, 2},
		{"full health", 5, 3, false, 5, 3},
		{"no charges left", 2, 0, false, 2, 0},
		{"last charge", 4, 1, true, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHero("Ada")
			h.Health = tt.health
			h.HealCharges = tt.charges

			if got := h.SelfHeal(); got != tt.wantApplied {
				t.Errorf("SelfHeal() = %v, want %v", got, tt.wantApplied)
			}
			if h.Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", h.Health, tt.wantHealth)
			}
			if h.HealCharges != tt.wantCharges {
				t.Errorf("HealCharges = %d, want %d", h.HealCharges, tt.wantCharges)
			}
		})
	}
}
