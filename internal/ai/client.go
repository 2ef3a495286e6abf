// Package ai wraps the third-party LLM providers behind a single text-in
// text-out generation call and parses their output into project files.
package ai

import (
	"context"
	"errors"
)

// systemPrompt is shared by all providers.
const systemPrompt = "You are a helpful AI assistant that generates code based on user prompts and specific formatting instructions."

// ErrEmptyResponse is returned when the provider answers with no content.
var ErrEmptyResponse = errors.New("llm returned empty response")

// Client is the generation call: one prompt in, raw generated text out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
