package entity

import "errors"

// MaxHeroes is the largest roster the game accepts.
const MaxHeroes = 5

var (
	// ErrRosterFull rejects a sixth hero.
	ErrRosterFull = errors.New("roster already holds the maximum number of heroes")
	// ErrEmptyName rejects a hero without a name.
	ErrEmptyName = errors.New("hero name must not be empty")
	// ErrDuplicateName rejects a name already on the roster.
	ErrDuplicateName = errors.New("hero name already taken")
)

// Roster is the ordered list of heroes still in the game. Turn order follows
// insertion order.
type Roster struct {
	heroes []*Hero
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{heroes: make([]*Hero, 0, MaxHeroes)}
}

// Add appends a hero. A rejected hero leaves the roster untouched.
func (r *Roster) Add(h *Hero) error {
	if len(r.heroes) >= MaxHeroes {
		return ErrRosterFull
	}
	if h.Name == "" {
		return ErrEmptyName
	}
	for _, existing := range r.heroes {
		if existing.Name == h.Name {
			return ErrDuplicateName
		}
	}
	r.heroes = append(r.heroes, h)
	return nil
}

// Len returns the number of heroes on the roster.
func (r *Roster) Len() int { return len(r.heroes) }

// At returns the hero at the given turn position.
func (r *Roster) At(i int) *Hero { return r.heroes[i] }

// Heroes returns the heroes in turn order. The slice is shared; callers must
// not reorder it.
func (r *Roster) Heroes() []*Hero { return r.heroes }

// Remove drops a hero from the roster, preserving the order of the rest.
func (r *Roster) Remove(h *Hero) {
	for i, existing := range r.heroes {
		if existing == h {
			r.heroes = append(r.heroes[:i], r.heroes[i+1:]...)
			return
		}
	}
}
