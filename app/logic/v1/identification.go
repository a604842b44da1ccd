package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/studybuddy-ai/studybuddy/pkg/security"
)

const TOKEN_CLAIMS_KEY = "__token_claims"

// InjectTokenClaim 从请求上下文中取出鉴权中间件写入的 claims
func InjectTokenClaim(c *gin.Context) (security.TokenClaims, bool) {
	val, exist := c.Get(TOKEN_CLAIMS_KEY)
	if !exist {
		return security.TokenClaims{}, false
	}

	claims, ok := val.(security.TokenClaims)
	return claims, ok
}

// SetTokenClaim 由鉴权中间件调用
func SetTokenClaim(c *gin.Context, claims security.TokenClaims) {
	c.Set(TOKEN_CLAIMS_KEY, claims)
}
