package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/studybuddy-ai/studybuddy/app/logic/v1"
	"github.com/studybuddy-ai/studybuddy/app/response"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
	"github.com/studybuddy-ai/studybuddy/pkg/utils"
)

type IngestChunkRequest struct {
	WorkspaceID  string `json:"workspace_id"`
	QuickStudyID string `json:"quick_study_id"`
	DocumentID   string `json:"document_id"`
	PageNumber   int    `json:"page_number"`
	Text         string `json:"chunk_text" binding:"required"`
}

func (s *HttpSrv) IngestChunk(c *gin.Context) {
	var req IngestChunkRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	scope, err := types.ResolveScope(req.WorkspaceID, req.QuickStudyID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewIngestLogic(c, s.Core).IngestChunk(scope, req.DocumentID, req.PageNumber, req.Text)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

type IngestPageRequest struct {
	WorkspaceID  string `json:"workspace_id"`
	QuickStudyID string `json:"quick_study_id"`
	DocumentID   string `json:"document_id"`
	PageNumber   int    `json:"page_number"`
	Text         string `json:"page_text" binding:"required"`
}

func (s *HttpSrv) IngestPage(c *gin.Context) {
	var req IngestPageRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	scope, err := types.ResolveScope(req.WorkspaceID, req.QuickStudyID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewIngestLogic(c, s.Core).IngestPage(scope, req.DocumentID, req.PageNumber, req.Text)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}
