package srv

import (
	"context"
	"fmt"

	"github.com/studybuddy-ai/studybuddy/pkg/ai"
	"github.com/studybuddy-ai/studybuddy/pkg/ai/cohere"
	"github.com/studybuddy-ai/studybuddy/pkg/ai/gemini"
	"github.com/studybuddy-ai/studybuddy/pkg/ai/openai"
)

type EmbeddingAI interface {
	EmbeddingForDocument(ctx context.Context, content []string) (ai.EmbeddingResult, error)
	EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error)
}

type CompletionAI interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type AIDriver interface {
	EmbeddingAI
	CompletionAI
}

// AI 聚合向量化与补全两类驱动
type AI struct {
	EmbeddingAI
	CompletionAI
}

type AIConfig struct {
	Cohere     CohereConfig     `toml:"cohere"`
	Completion CompletionConfig `toml:"completion"`
}

type CohereConfig struct {
	Token    string `toml:"token"`
	Endpoint string `toml:"endpoint"`
	Model    string `toml:"model"`
}

type CompletionConfig struct {
	Driver    string `toml:"driver"` // openai | gemini
	Token     string `toml:"token"`
	Endpoint  string `toml:"endpoint"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
}

const DEFAULT_COMPLETION_MAX_TOKENS = 700

func (c CompletionConfig) MaxTokensOrDefault() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return DEFAULT_COMPLETION_MAX_TOKENS
}

// SetupAI 根据配置装配 AI 驱动，embedding 固定使用 cohere
func SetupAI(cfg AIConfig) (*AI, error) {
	a := &AI{
		EmbeddingAI: cohere.New(cfg.Cohere.Token, cfg.Cohere.Endpoint, cfg.Cohere.Model),
	}

	switch cfg.Completion.Driver {
	case gemini.NAME:
		a.CompletionAI = gemini.New(cfg.Completion.Token, cfg.Completion.Model)
	case openai.NAME, "":
		a.CompletionAI = openai.New(cfg.Completion.Token, cfg.Completion.Endpoint, cfg.Completion.Model)
	default:
		return nil, fmt.Errorf("unknown completion driver %q", cfg.Completion.Driver)
	}

	return a, nil
}
