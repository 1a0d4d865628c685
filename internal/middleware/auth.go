package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/auth"
	"servio_backend/internal/logger"
)

const (
	ContextUserID  = "userID"
	ContextIsStaff = "isStaff"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": []string{"Authentifizierung erforderlich."}})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": []string{"Ungültiger Token."}})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsStaff, claims.IsStaff)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// OptionalAuthMiddleware populates the identity when a valid token is sent
// but lets anonymous requests through. Read-mostly endpoints use this.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := auth.ParseToken(tokenStr); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextIsStaff, claims.IsStaff)
				c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
			}
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id, or "" for anonymous callers.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetIsStaff extracts the staff flag of the authenticated user.
func GetIsStaff(c *gin.Context) bool {
	val, exists := c.Get(ContextIsStaff)
	if !exists {
		return false
	}
	isStaff, ok := val.(bool)
	return ok && isStaff
}
