package core

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-ai/studybuddy/app/core/srv"
	"github.com/studybuddy-ai/studybuddy/app/store/sqlstore"
)

// NewTestCore assembles a Core around injected stores and srv options so the
// logic layer can run without Postgres, redis or live providers.
func NewTestCore(cfg CoreConfig, provider *sqlstore.Provider, opts ...srv.ApplyFunc) *Core {
	return &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 3},
		metrics:    NewMetrics("studybuddy", "test"),
		httpEngine: gin.New(),
		stores: func() *sqlstore.Provider {
			return provider
		},
		srv: srv.SetupSrvs(opts...),
	}
}
