package middleware

import (
	"errors"
	"net/http"
	"strings"

	"contribhub/internal/auth"
	"contribhub/internal/model"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey holds the authenticated model.Contributor in the gin context.
const CurrentUserKey = "currentUser"

func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := auth.ParseToken(secret, parts[1])
		if errors.Is(err, auth.ErrInvalidClaims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user in token"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CurrentUserKey, model.Contributor{Username: claims.Username, Provider: claims.Provider})
		c.Next()
	}
}

// CurrentUser returns the user authenticated by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (model.Contributor, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return model.Contributor{}, false
	}
	user, ok := value.(model.Contributor)
	return user, ok
}
