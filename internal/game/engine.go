package game

import (
	"context"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/save"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/world"
)

// Prompter solicits player decisions. The console implements it for stdin;
// tests drive the engine with scripted fakes.
type Prompter interface {
	// ChooseAction picks one entry from the action menu, returning its index.
	ChooseAction(heroName string, options []string) int
	// ChooseDirection picks a movement direction, or declines (ok=false).
	ChooseDirection(heroName string, options []string) (index int, ok bool)
	// Confirm asks a yes/no question.
	Confirm(prompt string) bool
}

// Persister stores session snapshots. Implemented by *save.Store.
type Persister interface {
	Save(login string, snap *save.Snapshot) error
}

// Engine resolves hero turns against a session. It is the single
// authoritative implementation of movement, combat and item handling.
type Engine struct {
	session   *Session
	prompter  Prompter
	persister Persister
	rng       *rand.Rand
	log       *log.Logger
}

// NewEngine wires a turn engine. The rng drives hazard placement; pass a
// seeded source for reproducible behaviour.
func NewEngine(session *Session, prompter Prompter, persister Persister, rng *rand.Rand, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Engine{
		session:   session,
		prompter:  prompter,
		persister: persister,
		rng:       rng,
		log:       logger,
	}
}

// Session returns the session the engine drives.
func (e *Engine) Session() *Session { return e.session }

// Run plays the session to a terminal state.
func (e *Engine) Run(ctx context.Context) State {
	s := e.session
	// A turn index of zero means no turn has been recorded this round yet,
	// for fresh and resumed sessions alike.
	if s.TurnIndex == 0 {
		e.StartRound(ctx)
	}
	for {
		if s.Roster.Len() == 0 {
			e.log.Info("All heroes have died, nobody claimed victory. Game over")
			return StateAllHeroesDead
		}
		hero := s.ActiveHero()
		// A hero can die between turns, from another hero's sword. They are
		// removed when their turn comes up, without advancing the index.
		if !hero.IsAlive() {
			e.eliminate(hero)
			if s.Roster.Len() == 0 {
				e.log.Info("All heroes have died, nobody claimed victory. Game over")
				return StateAllHeroesDead
			}
			if s.TurnIndex >= s.Roster.Len() {
				s.TurnIndex = 0
				e.StartRound(ctx)
			}
			continue
		}
		e.log.WithFields(log.Fields{
			"hero":   hero.Name,
			"health": hero.Health,
			"round":  s.Round,
		}).Info("Hero takes their turn")

		state := e.playTurn(ctx, hero)
		switch state {
		case StateVictory, StateQuit:
			return state
		case StateHeroEliminated:
			e.eliminate(hero)
			if s.Roster.Len() == 0 {
				e.log.Info("All heroes have died, nobody claimed victory. Game over")
				return StateAllHeroesDead
			}
			// Removing the last hero in order wraps the cycle.
			if s.TurnIndex >= s.Roster.Len() {
				s.TurnIndex = 0
				e.StartRound(ctx)
			}
		case StateTurnComplete:
			s.TurnIndex = (s.TurnIndex + 1) % s.Roster.Len()
			if s.TurnIndex == 0 {
				e.StartRound(ctx)
			}
		}
	}
}

// LegalActions computes the active hero's menu: contextual actions for the
// current cell, then the always-available static actions.
func (e *Engine) LegalActions(hero *entity.Hero) []Action {
	var actions []Action
	for _, other := range e.session.Roster.Heroes() {
		if other != hero && other.IsAlive() && other.Pos == hero.Pos {
			actions = append(actions, Action{Kind: ActionAttack, Target: other})
		}
	}
	lab := e.session.Lab
	if lab.KeyPresent && hero.Pos == lab.KeyCoord {
		actions = append(actions, Action{Kind: ActionPickUpKey})
	}
	if lab.IsHeart(hero.Pos) {
		actions = append(actions, Action{Kind: ActionHealStation})
	}
	return append(actions,
		Action{Kind: ActionMove},
		Action{Kind: ActionSelfHeal},
		Action{Kind: ActionSave},
		Action{Kind: ActionQuit},
	)
}

// playTurn runs one hero's decision loop until an action consumes the turn or
// the session ends.
func (e *Engine) playTurn(ctx context.Context, hero *entity.Hero) State {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.turn")
	span.SetAttributes(
		attribute.String("hero", hero.Name),
		attribute.Int("round", e.session.Round),
		attribute.Int("turn_index", e.session.TurnIndex),
	)
	defer span.End()

	for {
		actions := e.LegalActions(hero)
		choice := e.prompter.ChooseAction(hero.Name, Labels(actions))
		if choice < 0 || choice >= len(actions) {
			continue
		}
		action := actions[choice]
		span.SetAttributes(attribute.String("action", action.Label()))

		consumed := false
		switch action.Kind {
		case ActionQuit:
			e.log.WithField("hero", hero.Name).Info("The player ended the game")
			return StateQuit

		case ActionSave:
			e.saveGame(ctx)
			// Saving never consumes the turn.

		case ActionAttack:
			hero.Attack(action.Target)
			e.log.WithFields(log.Fields{
				"hero":   hero.Name,
				"target": action.Target.Name,
			}).Info("Hero drew the sword and struck; the target lost one health")
			consumed = true

		case ActionPickUpKey:
			hero.GrabKey(e.session.Lab)
			e.log.WithField("hero", hero.Name).Info("Hero picked up the key")
			consumed = true

		case ActionHealStation:
			if hero.HealAtStation() {
				e.log.WithField("hero", hero.Name).Info("Hero refilled their health at the heart")
				consumed = true
			} else {
				e.log.WithField("hero", hero.Name).Info("Hero already has full health")
			}

		case ActionSelfHeal:
			if hero.SelfHeal() {
				e.log.WithFields(log.Fields{
					"hero":   hero.Name,
					"health": hero.Health,
				}).Info("Hero patched themselves up with the first-aid kit")
				consumed = true
			} else if hero.HealCharges <= 0 {
				e.log.WithField("hero", hero.Name).Info("The first-aid kit is empty")
			} else {
				e.log.WithField("hero", hero.Name).Info("Hero already has full health")
			}

		case ActionMove:
			result := e.resolveMove(hero)
			if result == moveVictory {
				span.SetAttributes(attribute.String("outcome", "victory"))
				return StateVictory
			}
			consumed = result.consumesTurn()
		}

		if !consumed {
			continue
		}
		if hero.IsAlive() {
			return StateTurnComplete
		}
		span.SetAttributes(attribute.String("outcome", "eliminated"))
		return StateHeroEliminated
	}
}

// moveResult classifies how a movement attempt resolved.
type moveResult int

const (
	moveDeclined moveResult = iota // no direction chosen, turn not consumed
	moveBlocked                    // collided with a wall or the grid edge
	moveRetreatDeclined            // backed out of a dangerous retreat
	moveRetreatDeath               // confirmed the retreat and died
	moveStepped                    // relocated, possibly burned by a hazard
	moveSlain                      // met the golem without the key
	moveVictory                    // met the golem carrying the key
)

// consumesTurn reports whether the movement attempt ended the hero's turn.
func (r moveResult) consumesTurn() bool {
	return r != moveDeclined && r != moveRetreatDeclined
}

// resolveMove asks for a direction and applies the movement rules: wall
// collisions cost one health, retreating onto the previous plain-floor cell
// needs a fatal confirmation, hazards burn on arrival and the golem guards
// the exit.
func (e *Engine) resolveMove(hero *entity.Hero) moveResult {
	idx, ok := e.prompter.ChooseDirection(hero.Name, directionLabels())
	if !ok {
		e.log.WithField("hero", hero.Name).Info("Hero chose not to move")
		return moveDeclined
	}
	dir := world.Directions[idx]
	dest := hero.Pos.Step(dir)
	lab := e.session.Lab

	if !lab.Grid.IsPassable(dest) {
		hero.Health--
		e.log.WithFields(log.Fields{
			"hero":   hero.Name,
			"health": hero.Health,
		}).Info("Hero crashed into a wall and loses one health")
		return moveBlocked
	}

	// The retreat rule only applies when departing plain floor; special
	// floor neither triggers it nor records the previous position.
	departure, err := lab.Grid.CellAt(hero.Pos)
	if err != nil {
		// Heroes only ever stand on validated cells.
		panic(err)
	}
	if departure == world.CellFloor {
		if dest == hero.PrevPos {
			e.log.WithField("hero", hero.Name).Info("Hero got scared and wants to turn back")
			if !e.prompter.Confirm("Are you sure? Your hero will die (yes/no): ") {
				return moveRetreatDeclined
			}
			hero.Health = 0
			e.log.WithField("hero", hero.Name).Info("Hero turned back and perished")
			return moveRetreatDeath
		}
		hero.PrevPos = hero.Pos
	}

	hero.Pos = dest
	e.log.WithFields(log.Fields{
		"hero": hero.Name,
		"cell": dest.String(),
	}).Info("Hero moved to a new cell")

	if lab.IsHazard(dest) {
		hero.Health--
		e.log.WithFields(log.Fields{
			"hero":   hero.Name,
			"health": hero.Health,
		}).Info("The cell burst into flames; hero loses one health")
	}
	if dest == lab.GolemCoord {
		e.log.WithField("hero", hero.Name).Info("Hero met the Golem")
		if hero.HasKey {
			e.log.WithField("hero", hero.Name).Info("Hero handed the key to the Golem and was let through. Victory!")
			return moveVictory
		}
		hero.Health = 0
		e.log.WithField("hero", hero.Name).Info("Hero had no key for the Golem and was struck down")
		return moveSlain
	}
	return moveStepped
}

// eliminate removes a dead hero from the roster, dropping the key at their
// last position, and keeps the turn index valid.
func (e *Engine) eliminate(hero *entity.Hero) {
	e.log.WithField("hero", hero.Name).Info("Hero suffered wounds incompatible with life and died")
	if hero.HasKey {
		e.session.Lab.KeyPresent = true
		e.session.Lab.KeyCoord = hero.Pos
		e.log.WithFields(log.Fields{
			"hero": hero.Name,
			"cell": hero.Pos.String(),
		}).Info("The key dropped from the fallen hero")
	}
	e.session.Roster.Remove(hero)
}

// saveGame persists the session. Failures are reported and play continues;
// persistence trouble is never fatal.
func (e *Engine) saveGame(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.save")
	defer span.End()

	if e.persister == nil {
		e.log.Warn("No save store configured, game not saved")
		return
	}
	if err := e.persister.Save(e.session.Login, e.session.Snapshot()); err != nil {
		span.RecordError(err)
		e.log.WithError(err).Warn("Failed to save the game")
		return
	}
	e.log.Info("Game saved")
}

func directionLabels() []string {
	labels := make([]string, len(world.Directions))
	for i, d := range world.Directions {
		labels[i] = d.String()
	}
	return labels
}
