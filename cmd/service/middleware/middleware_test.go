package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/studybuddy-ai/studybuddy/app/core"
	"github.com/studybuddy-ai/studybuddy/app/response"
	"github.com/studybuddy-ai/studybuddy/pkg/errors"
)

func newMetricsTestEngine(appCore *core.Core) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(response.NewResponse())
	engine.Use(UseMetrics(appCore))
	engine.GET("/ok", func(c *gin.Context) {
		response.APISuccess(c, nil)
	})
	engine.GET("/bad", func(c *gin.Context) {
		response.APIError(c, errors.New("test.bad", "invalid request", nil).Code(http.StatusBadRequest))
	})
	return engine
}

func TestUseMetricsPassesResponsesThrough(t *testing.T) {
	engine := newMetricsTestEngine(core.NewTestCore(core.CoreConfig{}, nil))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":400`)
}
