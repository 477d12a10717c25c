package game

import (
	"context"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/layout"
	"github.com/samdwyer/labyrinth/internal/save"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/ui"
)

// Game ties the console, the save store and the turn engine together for one
// sitting at the terminal.
type Game struct {
	console *ui.Console
	store   *save.Store
	rng     *rand.Rand
	log     *log.Logger
}

// New creates a game instance.
func New(console *ui.Console, store *save.Store, rng *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Game{
		console: console,
		store:   store,
		rng:     rng,
		log:     logger,
	}
}

// Run greets the player, restores or builds a session and plays it to a
// terminal state.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "session.init")

	g.console.Banner(`Welcome, you have entered the game "Labyrinth".`)
	login := g.console.ReadName("Enter your login: ")

	session, resumed := g.resumeOrCreate(ctx, login)
	initSpan.SetAttributes(
		attribute.String("login", login),
		attribute.Bool("resumed", resumed),
		attribute.Int("heroes", session.Roster.Len()),
	)
	initSpan.End()

	g.log.Info("The game has begun")
	engine := NewEngine(session, g.console, g.store, g.rng, g.log)
	state := engine.Run(ctx)

	_, endSpan := tracer.Start(ctx, "session.end")
	endSpan.SetAttributes(
		attribute.String("outcome", state.String()),
		attribute.Int("rounds", session.Round),
	)
	endSpan.End()

	switch state {
	case StateVictory:
		g.console.Banner("A hero has beaten the labyrinth. Congratulations!")
	case StateAllHeroesDead:
		g.console.Banner("All heroes have fallen. The labyrinth keeps its secret.")
	case StateQuit:
		g.console.Banner("See you next time.")
	}
	return nil
}

// resumeOrCreate offers a stored session when one exists; declining deletes
// it. Anything unusable falls through to a fresh session.
func (g *Game) resumeOrCreate(ctx context.Context, login string) (*Session, bool) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.load")
	defer span.End()

	g.log.Info("Checking for a saved game")
	snap, ok := g.store.Load(login)
	if !ok {
		g.log.Info("No saved game for this login")
		return g.newSession(login), false
	}
	if !g.console.Confirm("You have a saved game, do you want to load it? (yes/no): ") {
		g.log.Info("The player declined the saved game, so it was deleted")
		if err := g.store.Delete(login); err != nil {
			g.log.WithError(err).Warn("Failed to delete the saved game")
		}
		return g.newSession(login), false
	}
	session, err := SessionFromSnapshot(login, snap)
	if err != nil {
		span.RecordError(err)
		g.log.WithError(err).Warn("Saved game is unusable, starting a new one")
		return g.newSession(login), false
	}
	g.log.Info("Game loaded")
	return session, true
}

// newSession builds the shipped labyrinth and recruits a fresh roster.
func (g *Game) newSession(login string) *Session {
	g.log.Info("Creating a new game")
	lab := layout.MustBuildLabyrinth()
	return NewSession(login, lab, g.recruitHeroes())
}

// recruitHeroes asks for the hero count and names. Validation failures
// re-prompt without touching what is already on the roster.
func (g *Game) recruitHeroes() *entity.Roster {
	count := g.console.ReadCount("Enter the number of heroes: ", 1, entity.MaxHeroes)
	roster := entity.NewRoster()
	for i := 1; i <= count; i++ {
		for {
			name := g.console.ReadLine(fmt.Sprintf("Enter the name of hero %d: ", i))
			if err := roster.Add(entity.NewHero(name)); err != nil {
				g.log.WithError(err).Info("Give the hero a name. Duplicate names are not allowed")
				continue
			}
			break
		}
	}
	return roster
}
