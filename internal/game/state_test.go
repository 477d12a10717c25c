package game

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAwaitingAction, "awaiting_action"},
		{StateTurnComplete, "turn_complete"},
		{StateHeroEliminated, "hero_eliminated"},
		{StateRoundComplete, "round_complete"},
		{StateAllHeroesDead, "all_heroes_dead"},
		{StateVictory, "victory"},
		{StateQuit, "quit"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStateIsTerminal(t *testing.T) {
	terminal := map[State]bool{
		StateAwaitingAction: false,
		StateTurnComplete:   false,
		StateHeroEliminated: false,
		StateRoundComplete:  false,
		StateAllHeroesDead:  true,
		StateVictory:        true,
		StateQuit:           true,
	}
	for state, want := range terminal {
		if got := state.IsTerminal(); got != want {
			t.Errorf("%v.IsTerminal() = %t, want %t", state, got, want)
		}
	}
}
