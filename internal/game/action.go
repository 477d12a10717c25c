package game

import (
	"fmt"

	"github.com/samdwyer/labyrinth/internal/entity"
)

// ActionKind identifies one of the actions a hero can take on their turn.
type ActionKind int

const (
	// ActionAttack strikes a co-located hero with the sword.
	ActionAttack ActionKind = iota
	// ActionPickUpKey takes the key from the current cell.
	ActionPickUpKey
	// ActionHealStation refills health at a heart cell.
	ActionHealStation
	// ActionMove steps one cell in a chosen direction.
	ActionMove
	// ActionSelfHeal spends a first-aid charge.
	ActionSelfHeal
	// ActionSave persists the session without consuming the turn.
	ActionSave
	// ActionQuit ends the session.
	ActionQuit
)

// Action is one selectable menu entry. Target is set for attacks only.
type Action struct {
	Kind   ActionKind
	Target *entity.Hero
}

// Label returns the menu text for the action.
func (a Action) Label() string {
	switch a.Kind {
	case ActionAttack:
		return fmt.Sprintf("Attack %s with the sword", a.Target.Name)
	case ActionPickUpKey:
		return "Pick up the key"
	case ActionHealStation:
		return "Refill health"
	case ActionMove:
		return "Move hero"
	case ActionSelfHeal:
		return "Self-heal"
	case ActionSave:
		return "Save game"
	case ActionQuit:
		return "Quit game"
	default:
		return "unknown"
	}
}

// Labels renders a menu for a list of actions.
func Labels(actions []Action) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label()
	}
	return labels
}
