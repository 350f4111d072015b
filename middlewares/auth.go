package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/utils"
)

// claimsKey is the gin context key under which the decoded token claims
// are stored for handlers.
const claimsKey = "claims"

// AuthMiddleware extracts the bearer token from the Authorization header,
// decodes it and exposes the claims to handlers. Requests without a valid
// token are rejected before any handler logic runs.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Error(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		claims, err := tokens.Decode(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "Could not validate user")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by AuthMiddleware, or nil when the
// request did not pass through it.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
