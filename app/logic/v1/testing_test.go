package v1

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/studybuddy-ai/studybuddy/app/core"
	"github.com/studybuddy-ai/studybuddy/app/core/srv"
	"github.com/studybuddy-ai/studybuddy/app/store/sqlstore"
	"github.com/studybuddy-ai/studybuddy/pkg/ai"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

// stubEmbedder 按固定维度返回向量，failText 命中的片段返回错误
type stubEmbedder struct {
	dim      int
	failText string
	queryVec []float32
}

func (s *stubEmbedder) EmbeddingForDocument(_ context.Context, content []string) (ai.EmbeddingResult, error) {
	if s.failText != "" && len(content) > 0 && strings.Contains(content[0], s.failText) {
		return ai.EmbeddingResult{}, fmt.Errorf("embed backend unavailable")
	}
	vec := make([]float32, s.dim)
	if s.dim > 0 {
		vec[0] = 1
	}
	return ai.EmbeddingResult{Model: "stub", Data: [][]float32{vec}}, nil
}

func (s *stubEmbedder) EmbeddingForQuery(_ context.Context, content []string) (ai.EmbeddingResult, error) {
	if len(s.queryVec) == 0 {
		return s.EmbeddingForDocument(context.Background(), content)
	}
	return ai.EmbeddingResult{Model: "stub", Data: [][]float32{s.queryVec}}, nil
}

type stubCompleter struct {
	out          string
	err          error
	gotPrompt    string
	gotMaxTokens int
}

func (s *stubCompleter) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	s.gotPrompt = prompt
	s.gotMaxTokens = maxTokens
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

type memEmbeddingStore struct {
	mu      sync.Mutex
	rows    []types.Embedding
	listErr error
}

func (m *memEmbeddingStore) GetTable(...interface{}) string { return "mem_embedding" }

func (m *memEmbeddingStore) Create(_ context.Context, scope types.Scope, data types.Embedding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.ScopeID = scope.ID
	m.rows = append(m.rows, data)
	return nil
}

func (m *memEmbeddingStore) BatchCreate(ctx context.Context, scope types.Scope, datas []*types.Embedding) error {
	for _, data := range datas {
		if err := m.Create(ctx, scope, *data); err != nil {
			return err
		}
	}
	return nil
}

func (m *memEmbeddingStore) ListByScope(_ context.Context, scope types.Scope) ([]types.Embedding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var res []types.Embedding
	for _, row := range m.rows {
		if row.ScopeID == scope.ID {
			res = append(res, row)
		}
	}
	return res, nil
}

func (m *memEmbeddingStore) Total(ctx context.Context, scope types.Scope) (uint64, error) {
	list, err := m.ListByScope(ctx, scope)
	return uint64(len(list)), err
}

func (m *memEmbeddingStore) DeleteByDocument(_ context.Context, scope types.Scope, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []types.Embedding
	for _, row := range m.rows {
		if row.ScopeID == scope.ID && row.DocumentID == documentID {
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	return nil
}

func (m *memEmbeddingStore) DeleteAll(_ context.Context, scope types.Scope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []types.Embedding
	for _, row := range m.rows {
		if row.ScopeID != scope.ID {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

type memChatTurnStore struct {
	mu    sync.Mutex
	turns []types.ChatTurn
}

func (m *memChatTurnStore) GetTable(...interface{}) string { return "mem_chat" }

func (m *memChatTurnStore) Create(_ context.Context, scope types.Scope, data types.ChatTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data.ScopeID = scope.ID
	m.turns = append(m.turns, data)
	return nil
}

func (m *memChatTurnStore) ListByScope(_ context.Context, scope types.Scope, _, _ uint64) ([]types.ChatTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []types.ChatTurn
	for _, turn := range m.turns {
		if turn.ScopeID == scope.ID {
			res = append(res, turn)
		}
	}
	return res, nil
}

func (m *memChatTurnStore) DeleteAll(_ context.Context, scope types.Scope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
	return nil
}

func newLogicTestCore(embed srv.EmbeddingAI, complete srv.CompletionAI, embeddings *memEmbeddingStore, chats *memChatTurnStore) *core.Core {
	provider := sqlstore.NewProvider()
	provider.SetEmbeddingStore(embeddings)
	provider.SetChatTurnStore(chats)

	var cfg core.CoreConfig
	cfg.Retrieval.ChunkWords = 2

	return core.NewTestCore(cfg, provider, srv.ApplyAIDriver(embed, complete))
}
