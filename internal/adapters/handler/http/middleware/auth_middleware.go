package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	ContextUserIDKey    = "userID"
	ContextLocaleKey    = "userLocale"
)

type TokenValidator interface {
	ValidateToken(token string) (*domain.User, error)
}

func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || fields[0] != authorizationType {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		user, err := tokens.ValidateToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextLocaleKey, user.Locale)

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}

// GetUserLocale returns the stored BCP 47 locale of the authenticated user, if any.
func GetUserLocale(c *gin.Context) string {
	return c.GetString(ContextLocaleKey)
}
