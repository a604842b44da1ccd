package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/studybuddy-ai/studybuddy/app/logic/v1"
	"github.com/studybuddy-ai/studybuddy/app/response"
	"github.com/studybuddy-ai/studybuddy/pkg/utils"
)

type RelaxRequest struct {
	Mood string `json:"mood" binding:"required"`
}

func (s *HttpSrv) Relax(c *gin.Context) {
	var req RelaxRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	res, err := v1.NewRelaxLogic(c, s.Core).Relax(req.Mood)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}
