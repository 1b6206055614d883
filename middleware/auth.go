package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"notemark/services"
)

// UserIDKey is where AuthMiddleware stores the authenticated user id in
// the gin context.
const UserIDKey = "user_id"

// AuthMiddleware extracts and verifies the bearer token. No session state
// is consulted; every request is authenticated independently. Requests are
// rejected before any store access happens.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
