package cohere

// Embedding provider driver for https://cohere.com/ (v2 embed API).
// Uses asymmetric input types: search_document at ingest, search_query at
// question time.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/studybuddy-ai/studybuddy/pkg/ai"
)

const (
	NAME = "cohere"

	DefaultEndpoint = "https://api.cohere.ai/v2/embed"
	DefaultModel    = "embed-english-v3.0"

	inputTypeDocument = "search_document"
	inputTypeQuery    = "search_query"
)

type Driver struct {
	client   *http.Client
	token    string
	endpoint string
	model    string
}

func New(token, endpoint, model string) *Driver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}
	return &Driver{
		client:   &http.Client{Timeout: time.Second * ai.EmbedTimeout},
		token:    token,
		endpoint: endpoint,
		model:    model,
	}
}

type embedRequestBody struct {
	Model     string   `json:"model"`
	Texts     []string `json:"texts"`
	InputType string   `json:"input_type"`
}

// The response has drifted across API versions: v2 nests vectors under an
// "embeddings.float" key, v1 returned a flat list of vectors. Both shapes are
// tried in order; no match is an ErrEmbeddingShape.
type embedResponseBody struct {
	Embeddings json.RawMessage `json:"embeddings"`
}

func decodeEmbeddings(raw json.RawMessage) ([][]float32, error) {
	if len(raw) == 0 {
		return nil, ai.ErrEmbeddingShape
	}

	var keyed struct {
		Float [][]float32 `json:"float"`
	}
	if err := json.Unmarshal(raw, &keyed); err == nil && len(keyed.Float) > 0 {
		return keyed.Float, nil
	}

	var flat [][]float32
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, ai.ErrEmbeddingShape
}

func (s *Driver) embedding(ctx context.Context, content []string, inputType string) (ai.EmbeddingResult, error) {
	slog.Debug("Embedding", slog.String("driver", NAME), slog.String("input_type", inputType))

	result := ai.EmbeddingResult{Model: s.model}

	raw, _ := json.Marshal(embedRequestBody{
		Model:     s.model,
		Texts:     content,
		InputType: inputType,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(raw))
	if err != nil {
		return result, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("Failed to request cohere embed api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("Failed to request cohere embed api, %s: %s", resp.Status, string(body))
	}

	var parsed embedResponseBody
	if err = json.Unmarshal(body, &parsed); err != nil {
		return result, fmt.Errorf("Failed to unmarshal cohere response, %w", err)
	}

	if result.Data, err = decodeEmbeddings(parsed.Embeddings); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Driver) EmbeddingForDocument(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, content, inputTypeDocument)
}

func (s *Driver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	return s.embedding(ctx, content, inputTypeQuery)
}
