package middleware

import (
	"context"
	"net/http"

	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/log"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const CsrfHeader = "X-CSRF-Token"

// TokenValidator checks a session's anti-forgery token.
type TokenValidator interface {
	Validate(ctx context.Context, sessionID, token string) error
}

// CSRF guards state-changing endpoints. It only checks the token; who may
// perform the action is the job of the auth guards composed before it.
func CSRF(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if actor := pkgctx.Actor(c); actor != nil {
			sessionID = actor.SessionID
		}

		token := c.GetHeader(CsrfHeader)
		if err := v.Validate(c.Request.Context(), sessionID, token); err != nil {
			log.L.Error("CSRF validation failed",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, types.ActionResult{
				Success: false,
				Message: "Invalid CSRF token",
			})
			return
		}
		c.Next()
	}
}
