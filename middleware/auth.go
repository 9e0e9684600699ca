package middleware

import (
	"net/http"
	"strings"

	"pitchbook/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID    = "userID"
	CtxUserName  = "userName"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// OptionalAuthMiddleware extracts the caller's identity from a Bearer
// token when one is presented. A missing or invalid token is not an
// error: the request continues as an anonymous guest, which is a
// first-class way to book.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			// Treat a bad token the same as no token.
			c.Next()
			return
		}

		c.Set(CtxUserID, identity.Subject)
		c.Set(CtxUserName, identity.Name)
		c.Set(CtxUserEmail, identity.Email)
		c.Set(CtxUserRole, identity.Role)
		c.Next()
	}
}

// AdminOnlyMiddleware rejects requests whose token does not carry the
// admin role. It expects OptionalAuthMiddleware to have run first.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxUserRole)
		if roleStr, ok := role.(string); !ok || roleStr != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admins only"})
			return
		}
		c.Next()
	}
}
