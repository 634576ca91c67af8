package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
)

// principalKey is where the middleware stores the Principal in the gin
// context.
const principalKey = "auth.principal"

// Middleware authenticates the request and stores the resulting Principal.
// Requests without a valid bearer token are rejected with 401.
func Middleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		principal, err := ParseToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the Principal the middleware attached to the request.
func PrincipalFrom(c *gin.Context) (access.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return access.Principal{}, false
	}
	principal, ok := value.(access.Principal)
	return principal, ok
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", fmt.Errorf("invalid authorization format")
	}
	return tokenString, nil
}
