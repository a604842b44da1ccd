package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-ai/studybuddy/pkg/errors"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

func TestIngestPagePartialFailure(t *testing.T) {
	embedder := &stubEmbedder{dim: 4, failText: "gamma"}
	embeddings := &memEmbeddingStore{}
	appCore := newLogicTestCore(embedder, &stubCompleter{}, embeddings, &memChatTurnStore{})

	scope := types.Scope{Kind: types.SCOPE_KIND_WORKSPACE, ID: "w1"}
	logic := NewIngestLogic(context.Background(), appCore)

	// chunk_words=2 splits six words into three chunks; the middle one fails
	res, err := logic.IngestPage(scope, "doc-1", 4, "alpha beta gamma delta epsilon zeta")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Chunks)
	assert.Equal(t, 2, res.Stored)
	assert.Equal(t, 1, res.Failed)

	// surviving chunks keep document order and page metadata
	require.Len(t, embeddings.rows, 2)
	assert.Equal(t, "alpha beta", embeddings.rows[0].ChunkText)
	assert.Equal(t, "epsilon zeta", embeddings.rows[1].ChunkText)
	assert.Equal(t, 4, embeddings.rows[0].PageNumber)
	assert.Equal(t, "doc-1", embeddings.rows[0].DocumentID)
}

func TestIngestPageAllChunksStored(t *testing.T) {
	embeddings := &memEmbeddingStore{}
	appCore := newLogicTestCore(&stubEmbedder{dim: 4}, &stubCompleter{}, embeddings, &memChatTurnStore{})

	scope := types.Scope{Kind: types.SCOPE_KIND_QUICKSTUDY, ID: "q1"}
	res, err := NewIngestLogic(context.Background(), appCore).IngestPage(scope, "doc-2", 1, "one two three four")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Chunks)
	assert.Equal(t, 2, res.Stored)
	assert.Equal(t, 0, res.Failed)
	assert.Len(t, embeddings.rows, 2)
}

func TestIngestPageEmptyText(t *testing.T) {
	appCore := newLogicTestCore(&stubEmbedder{dim: 4}, &stubCompleter{}, &memEmbeddingStore{}, &memChatTurnStore{})

	scope := types.Scope{Kind: types.SCOPE_KIND_WORKSPACE, ID: "w1"}
	_, err := NewIngestLogic(context.Background(), appCore).IngestPage(scope, "doc-1", 1, "   \n\t ")
	require.Error(t, err)

	ce, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
}

func TestIngestChunkEmptyText(t *testing.T) {
	appCore := newLogicTestCore(&stubEmbedder{dim: 4}, &stubCompleter{}, &memEmbeddingStore{}, &memChatTurnStore{})

	scope := types.Scope{Kind: types.SCOPE_KIND_WORKSPACE, ID: "w1"}
	_, err := NewIngestLogic(context.Background(), appCore).IngestChunk(scope, "doc-1", 1, " ")
	require.Error(t, err)

	ce, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ce.GetCode())
}

func TestIngestChunkProviderFailure(t *testing.T) {
	embedder := &stubEmbedder{dim: 4, failText: "gamma"}
	appCore := newLogicTestCore(embedder, &stubCompleter{}, &memEmbeddingStore{}, &memChatTurnStore{})

	scope := types.Scope{Kind: types.SCOPE_KIND_WORKSPACE, ID: "w1"}
	_, err := NewIngestLogic(context.Background(), appCore).IngestChunk(scope, "doc-1", 1, "gamma rays")
	require.Error(t, err)

	ce, ok := err.(*errors.CustomizedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, ce.GetCode())
}
