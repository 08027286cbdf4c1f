// Package main is the entry point for Scat Scout.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/scatscout/internal/game"
)

func main() {
	// Load .env file for local development; env vars might be set directly
	envErr := godotenv.Load()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cmd := newRootCmd(&cfg, func(ctx context.Context, cfg game.Config) error {
		return run(ctx, cfg, envErr)
	})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
// Without a key nothing is set and tracing stays disabled.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_SCATSCOUT_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_SCATSCOUT_DATASET")
	if dataset == "" {
		dataset = "scatscout" // default dataset name
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	// The .env file may hold an unexpanded variable reference, so build the header here
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
