package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

func TestEmbeddingStoreTableRouting(t *testing.T) {
	repo := NewEmbeddingStore(nil)

	assert.Equal(t, "sbd_workspace_embedding", repo.GetTable(types.Scope{Kind: types.SCOPE_KIND_WORKSPACE, ID: "w1"}))
	assert.Equal(t, "sbd_quickstudy_embedding", repo.GetTable(types.Scope{Kind: types.SCOPE_KIND_QUICKSTUDY, ID: "q1"}))
	// no key falls back to the workspace table
	assert.Equal(t, "sbd_workspace_embedding", repo.GetTable())
}

func TestChatTurnStoreTableRouting(t *testing.T) {
	repo := NewChatTurnStore(nil)

	assert.Equal(t, "sbd_workspace_chat", repo.GetTable(types.Scope{Kind: types.SCOPE_KIND_WORKSPACE, ID: "w1"}))
	assert.Equal(t, "sbd_quickstudy_chat", repo.GetTable(types.Scope{Kind: types.SCOPE_KIND_QUICKSTUDY, ID: "q1"}))
}
