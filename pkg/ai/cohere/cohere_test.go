package cohere

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-ai/studybuddy/pkg/ai"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Driver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New("test-token", srv.URL, "")
}

func TestEmbeddingKeyedResponse(t *testing.T) {
	var gotBody embedRequestBody
	_, driver := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"embeddings": {"float": [[0.1, 0.2, 0.3]]}}`))
	})

	res, err := driver.EmbeddingForDocument(context.Background(), []string{"some chunk"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.InDelta(t, 0.2, res.Data[0][1], 1e-6)
	assert.Equal(t, DefaultModel, gotBody.Model)
	assert.Equal(t, inputTypeDocument, gotBody.InputType)
	assert.Equal(t, []string{"some chunk"}, gotBody.Texts)
}

func TestEmbeddingFlatResponse(t *testing.T) {
	var gotBody embedRequestBody
	_, driver := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"embeddings": [[1, 2], [3, 4]]}`))
	})

	res, err := driver.EmbeddingForQuery(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, inputTypeQuery, gotBody.InputType)
}

func TestEmbeddingUnrecognizedShape(t *testing.T) {
	_, driver := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"embeddings": "oops"}`))
	})

	_, err := driver.EmbeddingForQuery(context.Background(), []string{"q"})
	assert.ErrorIs(t, err, ai.ErrEmbeddingShape)
}

func TestEmbeddingMissingVector(t *testing.T) {
	_, driver := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "123"}`))
	})

	_, err := driver.EmbeddingForDocument(context.Background(), []string{"q"})
	assert.ErrorIs(t, err, ai.ErrEmbeddingShape)
}

func TestEmbeddingProviderError(t *testing.T) {
	_, driver := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid api token"}`, http.StatusUnauthorized)
	})

	_, err := driver.EmbeddingForDocument(context.Background(), []string{"q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api token")
}
