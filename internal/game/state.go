// Package game provides the turn engine, round lifecycle and session state.
package game

// State is a turn-engine state. Victory, AllHeroesDead and Quit are terminal;
// the rest report how a hero's turn resolved.
type State int

const (
	// StateAwaitingAction - the active hero is choosing an action.
	StateAwaitingAction State = iota
	// StateTurnComplete - a turn-consuming action finished and the hero survived.
	StateTurnComplete
	// StateHeroEliminated - the active hero died during their own turn.
	StateHeroEliminated
	// StateRoundComplete - the turn index wrapped; a new round starts next.
	StateRoundComplete
	// StateAllHeroesDead - terminal, the roster is empty.
	StateAllHeroesDead
	// StateVictory - terminal, a hero reached the golem carrying the key.
	StateVictory
	// StateQuit - terminal, the player ended the session.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingAction:
		return "awaiting_action"
	case StateTurnComplete:
		return "turn_complete"
	case StateHeroEliminated:
		return "hero_eliminated"
	case StateRoundComplete:
		return "round_complete"
	case StateAllHeroesDead:
		return "all_heroes_dead"
	case StateVictory:
		return "victory"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state ends the session.
func (s State) IsTerminal() bool {
	return s == StateAllHeroesDead || s == StateVictory || s == StateQuit
}
