// Package entity provides the heroes that walk the labyrinth.
package entity

import (
	"github.com/samdwyer/labyrinth/internal/world"
)

const (
	// MaxHealth is a hero's full health.
	MaxHealth = 5
	// StartHealCharges is the size of a fresh hero's first-aid kit.
	StartHealCharges = 3
)

// StartPosition is where every new hero enters the labyrinth.
var StartPosition = world.Coord{X: 3, Y: 0}

// Hero is a player-controlled character. All mutations happen through the
// turn engine, which passes collaborators in explicitly; a hero holds no
// reference back to the session.
type Hero struct {
	Name        string
	Health      int
	HasKey      bool
	Pos         world.Coord
	PrevPos     world.Coord
	HealCharges int
}

// NewHero creates a hero at the start position with full health.
func NewHero(name string) *Hero {
	return &Hero{
		Name:        name,
		Health:      MaxHealth,
		Pos:         StartPosition,
		PrevPos:     world.Coord{},
		HealCharges: StartHealCharges,
	}
}

// IsAlive returns true while the hero has health remaining.
func (h *Hero) IsAlive() bool { return h.Health > 0 }

// Attack strikes another hero with the sword for one health point. Health may
// transiently go below zero; the liveness check treats anything at or below
// zero as dead.
func (h *Hero) Attack(target *Hero) {
	target.Health--
}

// GrabKey takes the labyrinth's key. The engine guarantees the hero stands on
// the key cell while the key is present.
func (h *Hero) GrabKey(lab *world.Labyrinth) {
	h.HasKey = true
	lab.KeyPresent = false
}

// HealAtStation restores the hero to full health. Returns false without
// consuming anything when health is already full.
func (h *Hero) HealAtStation() bool {
	if h.Health >= MaxHealth {
		return false
	}
	h.Health = MaxHealth
	return true
}

// SelfHeal spends one first-aid charge for one health point. Returns false
// when the kit is empty or health is already full.
func (h *Hero) SelfHeal() bool {
	if h.HealCharges <= 0 || h.Health >= MaxHealth {
		return false
	}
	h.Health++
	h.HealCharges--
	return true
}
