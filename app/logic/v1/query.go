package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/studybuddy-ai/studybuddy/app/core"
	"github.com/studybuddy-ai/studybuddy/pkg/ai"
	"github.com/studybuddy-ai/studybuddy/pkg/errors"
	"github.com/studybuddy-ai/studybuddy/pkg/quiz"
	"github.com/studybuddy-ai/studybuddy/pkg/rank"
	"github.com/studybuddy-ai/studybuddy/pkg/safe"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
	"github.com/studybuddy-ai/studybuddy/pkg/utils"
)

const (
	QUERY_MODE_QA   = "qa"
	QUERY_MODE_QUIZ = "quiz"

	// 引用摘录的最大长度（按 rune 计）
	SOURCE_EXCERPT_RUNES = 200
)

type QueryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewQueryLogic(ctx context.Context, core *core.Core) *QueryLogic {
	return &QueryLogic{
		ctx:  ctx,
		core: core,
	}
}

type QueryResult struct {
	Answer  string             `json:"answer"`
	Sources []types.ChatSource `json:"sources"`
	Items   []quiz.Item        `json:"items,omitempty"`
}

// Query 在 scope 内检索最相关片段并生成回答。mode 为 quiz 时额外
// 将模型输出解析为问答对。
func (l *QueryLogic) Query(scope types.Scope, question, mode string) (*QueryResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New("QueryLogic.Query", "question is empty", nil).Code(http.StatusBadRequest)
	}
	switch mode {
	case QUERY_MODE_QA, QUERY_MODE_QUIZ:
	case "":
		mode = QUERY_MODE_QA
	default:
		return nil, errors.New("QueryLogic.Query", "unknown query mode", nil).Code(http.StatusBadRequest)
	}

	l.core.Metrics().QueryInc(mode)

	timer := l.core.Metrics().EmbedRequestTimer("search_query")
	embedding, err := l.core.Srv().AI().EmbeddingForQuery(l.ctx, []string{question})
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().ProviderErrorInc("cohere")
		return nil, errors.New("QueryLogic.Query.EmbeddingForQuery", "embedding provider request failed", err).Code(http.StatusBadGateway)
	}
	if len(embedding.Data) == 0 || len(embedding.Data[0]) == 0 {
		return nil, errors.New("QueryLogic.Query.EmbeddingForQuery", "embedding provider returned no vector", nil).Code(http.StatusBadGateway)
	}

	candidates, err := l.core.Store().EmbeddingStore().ListByScope(l.ctx, scope)
	if err != nil {
		return nil, errors.New("QueryLogic.Query.ListByScope", "failed to load indexed material", err).Code(http.StatusInternalServerError)
	}

	ranked, err := rank.Rank(embedding.Data[0], candidates, l.core.Cfg().Retrieval.TopKOrDefault())
	if err != nil {
		if err == rank.ErrNoCandidates {
			return nil, errors.New("QueryLogic.Query.Rank", "no material indexed yet", err).Code(http.StatusNotFound)
		}
		return nil, errors.New("QueryLogic.Query.Rank", "failed to rank indexed material", err).Code(http.StatusInternalServerError)
	}
	if ranked.Skipped > 0 {
		l.core.Metrics().RankSkippedAdd(ranked.Skipped)
		slog.Debug("skipped undecodable vectors during ranking",
			slog.String("scope_id", scope.ID),
			slog.Int("skipped", ranked.Skipped))
	}

	contextBlock := ai.BuildContextBlock(lo.Map(ranked.Ranked, func(item rank.Scored, _ int) ai.Passage {
		return ai.Passage{
			PageNumber: item.PageNumber,
			Text:       item.ChunkText,
		}
	}))

	var prompt string
	if mode == QUERY_MODE_QUIZ {
		prompt = ai.BuildQuizPrompt(contextBlock)
	} else {
		prompt = ai.BuildQAPrompt(contextBlock, question)
	}

	cfg := l.core.Cfg().AI.Completion
	completionTimer := l.core.Metrics().CompletionTimer(cfg.Driver)
	raw, err := l.core.Srv().AI().Complete(l.ctx, prompt, cfg.MaxTokensOrDefault())
	completionTimer.ObserveDuration()
	if err != nil {
		l.core.Metrics().ProviderErrorInc(cfg.Driver)
		return nil, errors.New("QueryLogic.Query.Complete", "completion provider request failed", err).Code(http.StatusBadGateway)
	}

	answer := ai.CleanCompletion(raw)

	result := &QueryResult{
		Answer: answer,
		Sources: lo.Map(ranked.Ranked, func(item rank.Scored, _ int) types.ChatSource {
			return types.ChatSource{
				Page:    item.PageNumber,
				Excerpt: utils.TruncateRunes(item.ChunkText, SOURCE_EXCERPT_RUNES),
				Score:   item.Score,
			}
		}),
	}

	if mode == QUERY_MODE_QUIZ {
		result.Items = quiz.Parse(answer)
	}

	// 问答记录的落库失败不影响本次响应
	turn := types.ChatTurn{
		Question: question,
		Answer:   answer,
		Sources:  result.Sources,
	}
	go safe.Run(func() {
		if err := l.core.Store().ChatTurnStore().Create(context.Background(), scope, turn); err != nil {
			slog.Error("failed to persist chat turn",
				slog.String("scope_id", scope.ID),
				slog.String("error", err.Error()))
		}
	})

	return result, nil
}

// History 分页获取 scope 下的历史问答，按时间倒序
func (l *QueryLogic) History(scope types.Scope, page, pageSize uint64) ([]types.ChatTurn, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = types.DEFAULT_PAGE_SIZE
	}

	list, err := l.core.Store().ChatTurnStore().ListByScope(l.ctx, scope, page, pageSize)
	if err != nil {
		return nil, errors.New("QueryLogic.History.ListByScope", "failed to load chat history", err).Code(http.StatusInternalServerError)
	}
	return list, nil
}
