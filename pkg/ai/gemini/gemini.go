package gemini

// Completion driver for Google Gemini via the official genai SDK.

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	NAME = "gemini"

	DefaultModel = "gemini-1.5-flash"
)

type Driver struct {
	client *genai.Client
	model  string
}

func New(token, model string) *Driver {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		panic(err)
	}
	if model == "" {
		model = DefaultModel
	}

	return &Driver{
		client: client,
		model:  model,
	}
}

func (s *Driver) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	slog.Debug("Complete", slog.String("driver", NAME), slog.String("model", s.model))

	m := s.client.GenerativeModel(s.model)
	if maxTokens > 0 {
		tokens := int32(maxTokens)
		m.GenerationConfig.MaxOutputTokens = &tokens
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("Completion error: empty candidates")
	}

	// Gemini may split a completion over several text parts.
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
