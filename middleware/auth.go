package middleware

import (
	"net/http"
	"net/url"
	"strings"

	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/jwt"
	"Atrium/pkg/log"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const SessionCookie = "session"

// OptionalAuth resolves the session token when present. Pages that render
// for anonymous visitors rely on it; the Require* guards build on top.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeSession, token)
		if err != nil {
			log.L.Warn("invalid session token", zap.Error(err))
			c.Next()
			return
		}

		pkgctx.SetActor(c, claims.Actor())
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAuth rejects anonymous requests: JSON 403 on API calls, a login
// redirect on pages.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if pkgctx.Actor(c) != nil {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodDelete {
			c.AbortWithStatusJSON(http.StatusForbidden, types.ActionResult{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		redirectFlash(c, "/login", "error", "Please log in to access this page.")
	}
}

// RequireNotGuest blocks guest sessions from destructive note actions.
func RequireNotGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := pkgctx.Actor(c)
		if !actor.IsGuest() {
			c.Next()
			return
		}
		log.L.Warn("guest attempted destructive action",
			zap.Int64("user_id", actor.ID),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusForbidden, types.ActionResult{
			Success: false,
			Message: "Guest users cannot delete notes",
		})
	}
}

// RequireAdmin gates the admin surface: JSON 403 on API calls, a flash
// redirect home on pages.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := pkgctx.Actor(c)
		if actor.IsAdmin() {
			c.Next()
			return
		}
		log.L.Warn("non-admin attempted admin action",
			zap.String("path", c.Request.URL.Path))
		if c.Request.Method == http.MethodDelete {
			c.AbortWithStatusJSON(http.StatusForbidden, types.ActionResult{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		redirectFlash(c, "/", "error", "You are not authorized to access this page.")
	}
}

func redirectFlash(c *gin.Context, target, category, message string) {
	c.Redirect(http.StatusFound,
		target+"?flash="+url.QueryEscape(category)+"&message="+url.QueryEscape(message))
	c.Abort()
}
