package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightflow/config"
	"freightflow/internal/utils"
)

const (
	ContextUserIDKey = "session_user_id"
	ContextOpenIDKey = "session_open_id"
	ContextRoleKey   = "session_role"
)

// SessionAuth rejects requests without a valid session cookie before any
// handler or store code runs. Reads stay public; the protected group mounts
// this on writes.
func SessionAuth(auth config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		claims, err := utils.ParseSessionToken([]byte(auth.JWTSecret), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired session",
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextOpenIDKey, claims.OpenID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalSession resolves the session when present without rejecting the
// request; auth.me uses it to return null for anonymous callers.
func OptionalSession(auth config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err == nil && token != "" {
			if claims, err := utils.ParseSessionToken([]byte(auth.JWTSecret), token); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextOpenIDKey, claims.OpenID)
				c.Set(ContextRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}
