package middleware

import (
	"errors"
	"net/http"
	"strings"

	"todo_webapp/internal/logger"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key under which the verified user id is
// stored for downstream handlers.
const UserIDKey = "user_id"

// JWT is the authentication gate for protected routes. No handler
// behind it runs without a verified identity attached to the context.
func JWT(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			AuthFailures.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		// Both "Bearer <token>" and a bare token are accepted.
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			// expired vs tampered matters for logs and metrics, not
			// for the caller
			reason := "invalid"
			if errors.Is(err, service.ErrTokenExpired) {
				reason = "expired"
			}
			AuthFailures.WithLabelValues(reason).Inc()
			logger.Debug("token rejected", "reason", reason)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
