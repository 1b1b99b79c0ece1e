package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// TokenParser verifies a bearer token. *auth.TokenManager implements it.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid token in the Authorization header or the
// auth_token cookie and stores the caller's id, email and role on the context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}

// RequireRole rejects callers whose token role is not role. It must run after
// AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != role {
			response.Error(c, http.StatusForbidden, "This action requires the "+role+" role")
			c.Abort()
			return
		}
		c.Next()
	}
}
