package openai

// Completion driver over the OpenAI chat API. Also serves OpenAI-compatible
// gateways such as OpenRouter via a custom base URL.

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

const (
	NAME = "openai"
)

type Driver struct {
	client *openai.Client
	model  string
}

func New(token, proxy, model string) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("Completion error: empty choices")
	}

	slog.Debug("Complete", slog.String("driver", NAME), slog.String("model", s.model))

	return resp.Choices[0].Message.Content, nil
}
