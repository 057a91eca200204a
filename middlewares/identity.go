package middlewares

import (
	"strconv"

	"backend/configs"
	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// Identity resolves the caller for every request and never rejects one.
// The X-User-Id header wins and is trusted as-is; a session cookie set at
// login is the fallback. Absence of both leaves the request anonymous.
func Identity(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h := c.GetHeader("X-User-Id"); h != "" {
			if id, err := strconv.ParseUint(h, 10, 64); err == nil && id > 0 {
				c.Set("userId", uint(id))
				c.Next()
				return
			}
		}

		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if id, err := utils.ParseSessionToken(token, cfg.JWTSecret); err == nil && id > 0 {
				c.Set("userId", id)
			}
		}
		c.Next()
	}
}

// RequireAuth gates endpoints that need an identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentUserID(c) == 0 {
			resp.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
