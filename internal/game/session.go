package game

import (
	"fmt"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/layout"
	"github.com/samdwyer/labyrinth/internal/save"
	"github.com/samdwyer/labyrinth/internal/world"
)

// Session owns one labyrinth and the ordered hero roster, together with the
// round counter and the active turn index. The turn index stays below the
// roster length whenever the roster is non-empty.
type Session struct {
	Login     string
	Round     int
	TurnIndex int
	Lab       *world.Labyrinth
	Roster    *entity.Roster
}

// NewSession starts a fresh session at round zero.
func NewSession(login string, lab *world.Labyrinth, roster *entity.Roster) *Session {
	return &Session{
		Login:  login,
		Lab:    lab,
		Roster: roster,
	}
}

// ActiveHero returns the hero whose turn it is.
func (s *Session) ActiveHero() *entity.Hero {
	return s.Roster.At(s.TurnIndex)
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() *save.Snapshot {
	heroes := make([]save.HeroRecord, 0, s.Roster.Len())
	for _, h := range s.Roster.Heroes() {
		heroes = append(heroes, save.HeroRecord{
			Name:         h.Name,
			Health:       h.Health,
			Position:     h.Pos,
			PrevPosition: h.PrevPos,
			HasKey:       h.HasKey,
			CountHeal:    h.HealCharges,
		})
	}
	return &save.Snapshot{
		Round:       s.Round,
		CurrentTurn: s.TurnIndex,
		FireCells:   s.Lab.HazardCoords(),
		Heroes:      heroes,
		Labyrinth: save.LabyrinthRecord{
			Grid:       s.Lab.Grid.Codes(),
			FireCoords: s.Lab.HazardCoords(),
			KeyCoord:   s.Lab.KeyCoord,
			GolemCoord: s.Lab.GolemCoord,
			KeyPresent: s.Lab.KeyPresent,
		},
	}
}

// SessionFromSnapshot rebuilds a session from a persisted snapshot.
func SessionFromSnapshot(login string, snap *save.Snapshot) (*Session, error) {
	grid, err := world.NewGrid(snap.Labyrinth.Grid)
	if err != nil {
		return nil, fmt.Errorf("restore labyrinth: %w", err)
	}
	// The save shape never stored the healing stations; restored sessions use
	// the shipped layout's hearts, like every fresh session does.
	def, err := layout.LoadLabyrinth()
	if err != nil {
		return nil, fmt.Errorf("restore labyrinth hearts: %w", err)
	}
	hearts := make([]world.Coord, len(def.HeartCoords))
	for i, h := range def.HeartCoords {
		hearts[i] = world.Coord{X: h[0], Y: h[1]}
	}

	lab := world.NewLabyrinth(grid, snap.Labyrinth.KeyCoord, hearts, snap.Labyrinth.GolemCoord)
	lab.KeyPresent = snap.Labyrinth.KeyPresent
	lab.Hazards = world.NewHazardSet(snap.FireCells...)

	roster := entity.NewRoster()
	for _, rec := range snap.Heroes {
		hero := &entity.Hero{
			Name:        rec.Name,
			Health:      rec.Health,
			HasKey:      rec.HasKey,
			Pos:         rec.Position,
			PrevPos:     rec.PrevPosition,
			HealCharges: rec.CountHeal,
		}
		if err := roster.Add(hero); err != nil {
			return nil, fmt.Errorf("restore hero %q: %w", rec.Name, err)
		}
	}
	if roster.Len() == 0 {
		return nil, fmt.Errorf("restore session: snapshot holds no heroes")
	}

	turn := snap.CurrentTurn
	if turn < 0 || turn >= roster.Len() {
		turn = 0
	}
	return &Session{
		Login:     login,
		Round:     snap.Round,
		TurnIndex: turn,
		Lab:       lab,
		Roster:    roster,
	}, nil
}
