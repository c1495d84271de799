package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

// SuperAdminOnly guards management routes. Must run after AuthMiddleware.
func SuperAdminOnly() gin.HandlerFunc {
	return RequireRole(shared.RoleSuperAdmin)
}

// RequireRole rejects callers whose role (set by AuthMiddleware) is not
// in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			response.Forbidden(c, "access denied: insufficient role")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			response.Forbidden(c, "access denied: insufficient role")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "access denied: insufficient role")
		c.Abort()
	}
}
