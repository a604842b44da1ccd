package security

import (
	"net/http"

	"github.com/dgrijalva/jwt-go"

	"github.com/studybuddy-ai/studybuddy/pkg/errors"
)

// TokenClaims identifies the caller of an API request.
type TokenClaims struct {
	User  string `json:"user"`
	Appid string `json:"appid"`
	jwt.StandardClaims
}

func NewTokenClaims(user, appid string, expiresAt int64) TokenClaims {
	return TokenClaims{
		User:  user,
		Appid: appid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt,
		},
	}
}

func SignToken(claims TokenClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry of an access token.
func ParseToken(tokenValue, secret string) (TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenValue, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("security.ParseToken.method", "unexpected signing method", nil)
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return claims, errors.New("security.ParseToken", "invalid access token", err).Code(http.StatusUnauthorized)
	}
	return claims, nil
}
