package srv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxTokensOrDefault(t *testing.T) {
	var cfg CompletionConfig
	assert.Equal(t, 700, cfg.MaxTokensOrDefault())

	cfg.MaxTokens = 256
	assert.Equal(t, 256, cfg.MaxTokensOrDefault())
}

func TestSetupAIDriverSelection(t *testing.T) {
	// empty driver falls back to openai
	a, err := SetupAI(AIConfig{})
	require.NoError(t, err)
	assert.NotNil(t, a.EmbeddingAI)
	assert.NotNil(t, a.CompletionAI)

	_, err = SetupAI(AIConfig{Completion: CompletionConfig{Driver: "claude"}})
	assert.Error(t, err)
}
