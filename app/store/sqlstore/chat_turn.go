package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/studybuddy-ai/studybuddy/pkg/types"
	"github.com/studybuddy-ai/studybuddy/pkg/utils"
)

type ChatTurnStore struct {
	CommonFields // 嵌入通用操作字段
}

// NewChatTurnStore 创建一个新的 ChatTurnStore 实例
func NewChatTurnStore(provider SqlProviderAchieve) *ChatTurnStore {
	repo := &ChatTurnStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_WORKSPACE_CHAT)
	repo.GetTableFunc(func(keys []interface{}) string {
		if len(keys) > 0 {
			if scope, ok := keys[0].(types.Scope); ok && scope.Kind == types.SCOPE_KIND_QUICKSTUDY {
				return types.TABLE_QUICKSTUDY_CHAT.Name()
			}
		}
		return types.TABLE_WORKSPACE_CHAT.Name()
	})
	repo.SetAllColumns("id", "scope_id", "question", "answer", "sources", "created_at")
	return repo
}

// Create 创建新的问答记录
func (s *ChatTurnStore) Create(ctx context.Context, scope types.Scope, data types.ChatTurn) error {
	if data.ID == "" {
		data.ID = utils.GenRandomID()
	}
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable(scope)).
		Columns("id", "scope_id", "question", "answer", "sources", "created_at").
		Values(data.ID, scope.ID, data.Question, data.Answer, data.Sources, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListByScope 分页获取 scope 下的问答记录，按时间倒序
func (s *ChatTurnStore) ListByScope(ctx context.Context, scope types.Scope, page, pageSize uint64) ([]types.ChatTurn, error) {
	query := sq.Select(s.GetAllColumns()...).
		From(s.GetTable(scope)).
		Where(sq.Eq{"scope_id": scope.ID}).
		OrderBy("created_at DESC")

	if page != types.NO_PAGINATION && pageSize != types.NO_PAGINATION {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.ChatTurn
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ChatTurnStore) DeleteAll(ctx context.Context, scope types.Scope) error {
	query := sq.Delete(s.GetTable(scope)).Where(sq.Eq{"scope_id": scope.ID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
