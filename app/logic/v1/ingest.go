package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/studybuddy-ai/studybuddy/app/core"
	"github.com/studybuddy-ai/studybuddy/pkg/ai"
	"github.com/studybuddy-ai/studybuddy/pkg/chunker"
	"github.com/studybuddy-ai/studybuddy/pkg/errors"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
)

type IngestLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewIngestLogic(ctx context.Context, core *core.Core) *IngestLogic {
	return &IngestLogic{
		ctx:  ctx,
		core: core,
	}
}

type IngestResult struct {
	Chunks int `json:"chunks"`
	Stored int `json:"stored"`
	Failed int `json:"failed"`
}

// IngestChunk 向量化单个片段并入库
func (l *IngestLogic) IngestChunk(scope types.Scope, documentID string, pageNumber int, text string) (*IngestResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("IngestLogic.IngestChunk", "text is empty", nil).Code(http.StatusBadRequest)
	}

	res := &IngestResult{Chunks: 1}
	if err := l.embedAndStore(scope, documentID, pageNumber, strings.TrimSpace(text)); err != nil {
		return nil, err
	}
	res.Stored = 1

	l.core.Metrics().IngestChunksAdd(string(scope.Kind), 1)
	return res, nil
}

// IngestPage 将整页文本切片后逐片向量化入库。单个片段失败不会中断
// 整页处理，只计入 Failed。
func (l *IngestLogic) IngestPage(scope types.Scope, documentID string, pageNumber int, text string) (*IngestResult, error) {
	chunks := chunker.Split(text, l.core.Cfg().Retrieval.ChunkWordsOrDefault())
	if len(chunks) == 0 {
		return nil, errors.New("IngestLogic.IngestPage", "no text to ingest", nil).Code(http.StatusBadRequest)
	}

	res := &IngestResult{Chunks: len(chunks)}
	for _, chunk := range chunks {
		if err := l.embedAndStore(scope, documentID, pageNumber, chunk); err != nil {
			slog.Error("failed to ingest chunk",
				slog.String("scope_id", scope.ID),
				slog.String("document_id", documentID),
				slog.Int("page_number", pageNumber),
				slog.String("error", err.Error()))
			res.Failed++
			continue
		}
		res.Stored++
	}

	l.core.Metrics().IngestChunksAdd(string(scope.Kind), res.Stored)
	if res.Failed > 0 {
		l.core.Metrics().IngestFailuresAdd(string(scope.Kind), res.Failed)
	}
	return res, nil
}

func (l *IngestLogic) embedAndStore(scope types.Scope, documentID string, pageNumber int, chunk string) error {
	ctx, cancel := context.WithTimeout(l.ctx, time.Second*ai.EmbedTimeout)
	defer cancel()

	timer := l.core.Metrics().EmbedRequestTimer("search_document")
	embedding, err := l.core.Srv().AI().EmbeddingForDocument(ctx, []string{chunk})
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().ProviderErrorInc("cohere")
		return errors.New("IngestLogic.embedAndStore.EmbeddingForDocument", "embedding provider request failed", err).Code(http.StatusBadGateway)
	}
	if len(embedding.Data) == 0 || len(embedding.Data[0]) == 0 {
		return errors.New("IngestLogic.embedAndStore.EmbeddingForDocument", "embedding provider returned no vector", nil).Code(http.StatusBadGateway)
	}

	err = l.core.Store().EmbeddingStore().Create(ctx, scope, types.Embedding{
		DocumentID: documentID,
		PageNumber: pageNumber,
		ChunkText:  chunk,
		Vector:     embedding.Data[0],
	})
	if err != nil {
		return errors.New("IngestLogic.embedAndStore.Create", "failed to store embedding", err).Code(http.StatusInternalServerError)
	}
	return nil
}
