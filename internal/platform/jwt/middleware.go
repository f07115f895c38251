package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/api"
)

// ContextUserID is the gin context key under which the middlewares store
// the authenticated user's ID.
const ContextUserID = "userID"

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// AuthRequired returns a Gin middleware that restricts access to callers
// presenting a valid bearer token. Failures are reported in the standard
// envelope with the NOT_AUTHENTICATED code.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				api.Fail(api.CodeInternalError, "server misconfigured"))
			return
		}

		userID, ok := bearerUserID(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.Fail(api.CodeNotAuthenticated, "a valid bearer token is required"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// AuthOptional returns a Gin middleware that resolves a bearer token when
// one is present and valid, and passes the request through unchanged
// otherwise. Handlers decide what an anonymous caller means.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret != "" {
			if userID, ok := bearerUserID(c, secret); ok {
				c.Set(ContextUserID, userID)
			}
		}
		c.Next()
	}
}

// bearerUserID extracts the Authorization bearer token and resolves it to
// a user ID. Malformed headers and invalid tokens fail open to (0, false).
func bearerUserID(c *gin.Context, secret string) (uint, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0, false
	}
	tokenStr := strings.TrimPrefix(auth, "Bearer ")
	return Resolve(tokenStr, []byte(secret))
}
