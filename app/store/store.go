package store

import (
	"context"

	"github.com/studybuddy-ai/studybuddy/pkg/sqlstore"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

// EmbeddingStore 定义向量片段表的方法集合，workspace 与 quick-study 共用。
type EmbeddingStore interface {
	sqlstore.SqlCommons
	// Create 创建新的向量片段记录
	Create(ctx context.Context, scope types.Scope, data types.Embedding) error
	BatchCreate(ctx context.Context, scope types.Scope, datas []*types.Embedding) error
	// ListByScope 获取 scope 下全部向量片段
	ListByScope(ctx context.Context, scope types.Scope) ([]types.Embedding, error)
	Total(ctx context.Context, scope types.Scope) (uint64, error)
	DeleteByDocument(ctx context.Context, scope types.Scope, documentID string) error
	DeleteAll(ctx context.Context, scope types.Scope) error
}

// ChatTurnStore 定义问答记录表的方法集合
type ChatTurnStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, scope types.Scope, data types.ChatTurn) error
	ListByScope(ctx context.Context, scope types.Scope, page, pageSize uint64) ([]types.ChatTurn, error)
	DeleteAll(ctx context.Context, scope types.Scope) error
}
