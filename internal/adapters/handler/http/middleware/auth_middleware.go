package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lequangminh/fitstreak/internal/core/services"
)

// userIDKey is where the middleware parks the authenticated account id for
// the handlers downstream.
const userIDKey = "fitstreak.userID"

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. ok is false for a missing or malformed header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// AuthMiddleware gates a route group on a valid session token. The token is
// the one the widget obtained at login; anything missing, malformed,
// expired or issued for a deleted account is a 401.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed bearer token"})
			return
		}

		userID, err := tokenService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the account id the auth middleware stored for this
// request.
func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
