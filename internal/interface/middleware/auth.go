package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nestorahq/nestora-api/pkg/helpers"
	"github.com/nestorahq/nestora-api/pkg/response"
)

// Context keys set by BearerAuth.
const (
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
	CtxUserRoleKey  = "userRole"
)

// BearerAuth validates the Authorization bearer token and injects the
// identity claim into the Gin context. A missing header or token segment
// rejects before any signature check; verification fully completes before
// any handler touches the store.
func BearerAuth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized access", nil)
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized access", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserNameKey, claims.Name)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}
