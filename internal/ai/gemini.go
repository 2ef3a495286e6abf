package ai

import (
	"context"
	"fmt"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
