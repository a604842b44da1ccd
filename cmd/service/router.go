package service

import (
	"github.com/gin-gonic/gin"

	"github.com/studybuddy-ai/studybuddy/app/core"
	"github.com/studybuddy-ai/studybuddy/app/response"
	"github.com/studybuddy-ai/studybuddy/cmd/service/handler"
	"github.com/studybuddy-ai/studybuddy/cmd/service/middleware"
	"github.com/studybuddy-ai/studybuddy/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func GetAILimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, "ai", func(c *gin.Context) string {
			return key
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	aiLimit := GetAILimitBuilder(s.Core)

	s.Engine.Use(response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.UseMetrics(s.Core))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	apiV1.Use(middleware.Authorization(s.Core))
	{
		ingest := apiV1.Group("/ingest")
		{
			ingest.POST("", aiLimit("ingest", core.WithLimit(120)), s.IngestChunk)
			ingest.POST("/page", aiLimit("ingest", core.WithLimit(120)), s.IngestPage)
		}

		apiV1.POST("/query", aiLimit("query", core.WithLimit(60)), s.Query)
		apiV1.GET("/chats", s.ChatHistory)
		apiV1.POST("/relax", ipLimit("relax", core.WithLimit(30)), s.Relax)
	}
}
