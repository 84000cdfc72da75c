package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/digishoplabs/digishop/internal/pkg/auth"
	"github.com/digishoplabs/digishop/internal/server/http/dto"
)

// ClaimsContextKey is a gin context key for the authenticated token claims.
const ClaimsContextKey = "authClaims"

// TokenParser validates bearer tokens and returns their claims.
type TokenParser interface {
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// AuthRequired ensures the request carries a valid bearer token before it
// reaches the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authentication required"))
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("invalid or expired token"))
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// AdminRequired rejects authenticated requests whose token does not carry the
// admin flag. It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authentication required"))
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("admin access required"))
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthRequired, or nil when the
// request was not authenticated.
func ClaimsFromContext(c *gin.Context) *pkgAuth.Claims {
	value, ok := c.Get(ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*pkgAuth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
