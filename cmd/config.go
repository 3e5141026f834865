package cmd

import (
	"os"

	"concierge/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Config carries every externally supplied setting. Both binaries fail fast
// on a missing required value instead of discovering it on the first remote
// call.
type Config struct {
	HTTPPort    string
	SupabaseURL string
	SupabaseKey string
	GroqAPIKey  string
}

// LoadConfig reads configuration from the environment, merging a .env file
// when one exists next to the binary.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load(".env")

	config := Config{
		HTTPPort:    os.Getenv("HTTP_PORT"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}

	if config.SupabaseURL == "" {
		return Config{}, errs.NewValueIsRequiredError("SUPABASE_URL")
	}
	if config.SupabaseKey == "" {
		return Config{}, errs.NewValueIsRequiredError("SUPABASE_KEY")
	}

	// GROQ_API_KEY stays optional: only the agent's "ask" escape uses it,
	// and the agent degrades to commands-only without it.
	return config, nil
}
