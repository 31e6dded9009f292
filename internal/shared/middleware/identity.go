package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookclub-backend/internal/callable"
	"bookclub-backend/pkg/jwt"
)

// Identity extracts the caller's identity from a bearer token when one is
// present. Missing or invalid tokens pass through without an identity: the
// access guard inside each procedure owns the Unauthenticated decision, not
// the transport.
func Identity(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		callable.SetIdentity(c, &callable.Identity{
			Subject: claims.UserID,
			Email:   claims.Email,
			Admin:   claims.Admin,
		})
		c.Next()
	}
}
