package context

import (
	"net/http"

	"Atrium/pkg/log"
	"Atrium/pkg/response"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxActor = "actor"
)

type HandlerFunc func(*gin.Context) error

// Wrap adapts an error-returning handler. Unexpected errors are logged in
// full and answered with a generic 500; the detail never reaches the client.
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// a handler that already wrote a response keeps it
			if c.Writer.Written() {
				return
			}
			log.L.Error("handler error",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  "internal error",
			})
		}
	}
}

// Actor returns the request actor, or nil for anonymous requests.
func Actor(c *gin.Context) *types.Actor {
	v, ok := c.Get(CtxActor)
	if !ok {
		return nil
	}
	actor, ok := v.(*types.Actor)
	if !ok {
		return nil
	}
	return actor
}

func SetActor(c *gin.Context, actor *types.Actor) {
	c.Set(CtxActor, actor)
}
