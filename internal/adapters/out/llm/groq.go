// Package llm provides the free-text assistant backing the agent's "ask"
// escape hatch. Questions the command grammar cannot express are forwarded to
// a hosted model behind an OpenAI-compatible API.
package llm

import (
	"context"

	"concierge/internal/pkg/errs"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"
)

// GroqClient answers free-text questions through Groq's OpenAI-compatible
// completion endpoint.
type GroqClient struct {
	model llms.Model
}

// NewGroqClient creates a client for Groq's hosted model.
func NewGroqClient(apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(groqBaseURL),
		openai.WithModel(groqModel),
	)
	if err != nil {
		return nil, err
	}

	return &GroqClient{model: model}, nil
}

// Ask sends a single prompt and returns the model's completion.
func (c *GroqClient) Ask(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(0.7))
}
