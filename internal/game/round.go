package game

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/labyrinth/internal/telemetry"
)

// StartRound advances the round counter and replaces the hazard overlay, then
// reports every hero's standing. A failure to place hazards means the terrain
// layout is broken and is treated as fatal.
func (e *Engine) StartRound(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.round")
	defer span.End()

	s := e.session
	s.Round++

	if err := s.Lab.RegenerateHazards(e.rng); err != nil {
		span.RecordError(err)
		e.log.WithError(err).Panic("Hazard generation failed, labyrinth layout is invalid")
	}

	coords := s.Lab.HazardCoords()
	span.SetAttributes(
		attribute.Int("round", s.Round),
		attribute.Int("hazards", len(coords)),
		attribute.Int("heroes", s.Roster.Len()),
	)
	e.log.WithFields(log.Fields{
		"round":   s.Round,
		"hazards": coords,
	}).Info("A new round begins; these cells are on fire")

	for _, hero := range s.Roster.Heroes() {
		fields := log.Fields{"hero": hero.Name, "health": hero.Health}
		if hero.HasKey {
			fields["key"] = true
		}
		e.log.WithFields(fields).Info("Hero status")
	}
}
