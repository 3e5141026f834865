package main

import (
	"context"
	"log/slog"
	"os"

	"concierge/cmd"
	"concierge/internal/adapters/in/cli"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %s", err)
	}

	interpreter, err := root.CreateCommandInterpreter()
	if err != nil {
		log.Fatalf("Error building command interpreter: %s", err)
	}

	// The agent still works without the assistant; only "ask" is degraded.
	var assistant cli.Assistant
	groq, err := root.CreateAssistant(config.GroqAPIKey)
	if err != nil {
		logger.Warn("assistant unavailable, free-text questions disabled", "error", err)
	} else {
		assistant = groq
	}

	loop, err := cli.NewLoop(interpreter, assistant, logger)
	if err != nil {
		log.Fatalf("Error building agent loop: %s", err)
	}

	if err := loop.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Agent loop failed: %s", err)
	}
}
