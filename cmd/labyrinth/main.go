// Package main is the entry point for Labyrinth.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/labyrinth/internal/game"
	"github.com/samdwyer/labyrinth/internal/save"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_LABYRINTH_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Debugf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warnf("Telemetry setup failed: %v", err)
		log.Warn("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warnf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	console := ui.NewConsole()
	store := save.NewStore(os.Getenv("LABYRINTH_SAVE_FILE"), log.StandardLogger())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g := game.New(console, store, rng, log.StandardLogger())
	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_LABYRINTH_API_KEY")
	dataset := os.Getenv("HONEYCOMB_LABYRINTH_DATASET")
	if dataset == "" {
		dataset = "labyrinth" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
