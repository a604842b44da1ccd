package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"

	"github.com/studybuddy-ai/studybuddy/pkg/types"
	"github.com/studybuddy-ai/studybuddy/pkg/utils"
)

type EmbeddingStore struct {
	CommonFields // 嵌入通用操作字段
}

// NewEmbeddingStore 创建一个新的 EmbeddingStore 实例
func NewEmbeddingStore(provider SqlProviderAchieve) *EmbeddingStore {
	repo := &EmbeddingStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_WORKSPACE_EMBEDDING)
	repo.GetTableFunc(func(keys []interface{}) string {
		if len(keys) > 0 {
			if scope, ok := keys[0].(types.Scope); ok && scope.Kind == types.SCOPE_KIND_QUICKSTUDY {
				return types.TABLE_QUICKSTUDY_EMBEDDING.Name()
			}
		}
		return types.TABLE_WORKSPACE_EMBEDDING.Name()
	})
	repo.SetAllColumns("id", "scope_id", "document_id", "page_number", "chunk_text", "embedding", "created_at")
	return repo
}

// Create 创建新的向量片段记录
func (s *EmbeddingStore) Create(ctx context.Context, scope types.Scope, data types.Embedding) error {
	if data.ID == "" {
		data.ID = utils.GenRandomID()
	}
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable(scope)).
		Columns("id", "scope_id", "document_id", "page_number", "chunk_text", "embedding", "created_at").
		Values(data.ID, scope.ID, data.DocumentID, data.PageNumber, data.ChunkText, pgvector.NewVector(data.Vector), data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// BatchCreate 批量创建向量片段记录
func (s *EmbeddingStore) BatchCreate(ctx context.Context, scope types.Scope, datas []*types.Embedding) error {
	if len(datas) == 0 {
		return nil
	}

	query := sq.Insert(s.GetTable(scope)).
		Columns("id", "scope_id", "document_id", "page_number", "chunk_text", "embedding", "created_at")

	for _, item := range datas {
		if item.ID == "" {
			item.ID = utils.GenRandomID()
		}
		if item.CreatedAt == 0 {
			item.CreatedAt = time.Now().Unix()
		}
		query = query.Values(item.ID, scope.ID, item.DocumentID, item.PageNumber, item.ChunkText, pgvector.NewVector(item.Vector), item.CreatedAt)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByScope 获取 scope 下全部向量片段。embedding 列以文本形式取回，
// 解码交给上层排序逻辑处理。
func (s *EmbeddingStore) ListByScope(ctx context.Context, scope types.Scope) ([]types.Embedding, error) {
	query := sq.Select("id", "scope_id", "document_id", "page_number", "chunk_text", "embedding::text AS embedding", "created_at").
		From(s.GetTable(scope)).
		Where(sq.Eq{"scope_id": scope.ID}).
		OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Embedding
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *EmbeddingStore) Total(ctx context.Context, scope types.Scope) (uint64, error) {
	query := sq.Select("COUNT(*)").
		From(s.GetTable(scope)).
		Where(sq.Eq{"scope_id": scope.ID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total uint64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *EmbeddingStore) DeleteByDocument(ctx context.Context, scope types.Scope, documentID string) error {
	query := sq.Delete(s.GetTable(scope)).
		Where(sq.Eq{"scope_id": scope.ID, "document_id": documentID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EmbeddingStore) DeleteAll(ctx context.Context, scope types.Scope) error {
	query := sq.Delete(s.GetTable(scope)).Where(sq.Eq{"scope_id": scope.ID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
