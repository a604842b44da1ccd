package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/studybuddy-ai/studybuddy/app/logic/v1"
	"github.com/studybuddy-ai/studybuddy/app/response"
	"github.com/studybuddy-ai/studybuddy/pkg/types"
	"github.com/studybuddy-ai/studybuddy/pkg/utils"
)

type QueryRequest struct {
	WorkspaceID  string `json:"workspace_id"`
	QuickStudyID string `json:"quick_study_id"`
	Question     string `json:"question" binding:"required"`
	Mode         string `json:"mode"`
}

func (s *HttpSrv) Query(c *gin.Context) {
	var req QueryRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	scope, err := types.ResolveScope(req.WorkspaceID, req.QuickStudyID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewQueryLogic(c, s.Core).Query(scope, req.Question, req.Mode)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

type ChatHistoryRequest struct {
	WorkspaceID  string `form:"workspace_id"`
	QuickStudyID string `form:"quick_study_id"`
	Page         uint64 `form:"page"`
	PageSize     uint64 `form:"pagesize"`
}

type ChatHistoryResponse struct {
	List []types.ChatTurn `json:"list"`
}

func (s *HttpSrv) ChatHistory(c *gin.Context) {
	var req ChatHistoryRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	scope, err := types.ResolveScope(req.WorkspaceID, req.QuickStudyID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	list, err := v1.NewQueryLogic(c, s.Core).History(scope, req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ChatHistoryResponse{List: list})
}
