// Package ai defines the provider-agnostic surfaces the retrieval pipeline
// depends on. Concrete drivers live in subpackages and normalize their
// provider's wire shapes to these types.
package ai

import (
	"context"
	"errors"
)

// EmbedTimeout bounds a single ingest-time embedding call. A timed-out call
// fails that chunk only, ingestion continues.
const EmbedTimeout = 30 // seconds

// ErrEmbeddingShape reports a provider response with no recognizable vector
// under any known shape. Terminal for the calling request, never retried at
// this layer.
var ErrEmbeddingShape = errors.New("embedding response contains no recognizable vector")

type EmbeddingResult struct {
	Model string
	Data  [][]float32
}

// EmbeddingDriver embeds texts asymmetrically: document role at ingest time,
// query role at question time.
type EmbeddingDriver interface {
	EmbeddingForDocument(ctx context.Context, content []string) (EmbeddingResult, error)
	EmbeddingForQuery(ctx context.Context, content []string) (EmbeddingResult, error)
}

// CompletionDriver produces a free-text completion for an assembled prompt.
type CompletionDriver interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
