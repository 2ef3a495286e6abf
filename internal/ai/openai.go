package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient generates via the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

func NewOpenAIClient(apiKey, model string, log *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// Lower temperature for more predictable code generation.
		Temperature: 0.3,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil && shouldRetry(err) {
		c.log.Warn("openai call failed, retrying once after delay", zap.Error(err))
		time.Sleep(2 * time.Second)
		resp, err = c.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.log.Warn("openai returned no content", zap.Any("usage", resp.Usage))
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
