package handler

import (
	"net/http"

	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/log"
	"Atrium/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pages serves the static renders.
type Pages struct {
	VisitorService service.IVisitorService
}

func (h *Pages) RegisterRouter(r gin.IRouter) {
	r.GET("/resume", pkgctx.Wrap(h.Resume))
	r.GET("/visitor-counter", pkgctx.Wrap(h.VisitorCounter))
}

func (h *Pages) Resume(c *gin.Context) error {
	c.HTML(http.StatusOK, "resume.html", gin.H{
		"user": pkgctx.Actor(c),
	})
	return nil
}

func (h *Pages) VisitorCounter(c *gin.Context) error {
	count, err := h.VisitorService.Count(c.Request.Context())
	if err != nil {
		log.L.Error("visitor count failed", zap.Error(err))
	}
	c.HTML(http.StatusOK, "visitor_counter.html", gin.H{
		"user":          pkgctx.Actor(c),
		"visitor_count": count,
	})
	return nil
}
