package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-ai/studybuddy/app/core"
	v1 "github.com/studybuddy-ai/studybuddy/app/logic/v1"
	"github.com/studybuddy-ai/studybuddy/app/response"
	"github.com/studybuddy-ai/studybuddy/pkg/errors"
	"github.com/studybuddy-ai/studybuddy/pkg/security"
)

const AUTH_TOKEN_HEADER_KEY = "Authorization"

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

// Authorization 校验 Bearer token。未配置 jwt_secret 时放行所有请求。
func Authorization(appCore *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.Authorization"
	return func(c *gin.Context) {
		secret := appCore.Cfg().Security.JWTSecret
		if secret == "" {
			return
		}

		tokenValue := strings.TrimPrefix(c.Request.Header.Get(AUTH_TOKEN_HEADER_KEY), "Bearer ")
		if tokenValue == "" {
			response.APIError(c, errors.New(tracePrefix, "unauthorized", nil).Code(http.StatusUnauthorized))
			return
		}

		claims, err := security.ParseToken(tokenValue, secret)
		if err != nil {
			response.APIError(c, errors.Trace(tracePrefix, err))
			return
		}

		v1.SetTokenClaim(c, claims)
	}
}

// UseMetrics 记录 API 响应耗时与错误计数
func UseMetrics(appCore *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := appCore.Metrics().ApiResponseTimer(c.FullPath())
		c.Next()
		timer.ObserveDuration()

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			appCore.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), status)
		}
	}
}

type LimiterFunc func(key string, opts ...core.LimitOption) gin.HandlerFunc

func UseLimit(appCore *core.Core, operation string, genKeyFunc func(c *gin.Context) string, opts ...core.LimitOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appCore.UseLimiter(genKeyFunc(c), opts...).Allow() {
			response.APIError(c, errors.New("middleware.limiter."+operation, "too many requests", nil).Code(http.StatusTooManyRequests))
		}
	}
}
