package handler

import (
	"net/http"

	"Atrium/middleware"
	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/log"
	"Atrium/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Admin struct {
	BlogService    service.IBlogService
	ContactService service.IContactService
	VisitorService service.IVisitorService
	Csrf           CsrfStore
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	r.GET("/admin/dashboard",
		middleware.RequireAuth(),
		middleware.RequireAdmin(),
		pkgctx.Wrap(h.Dashboard),
	)
}

func (h *Admin) Dashboard(c *gin.Context) error {
	ctx := c.Request.Context()
	actor := pkgctx.Actor(c)

	posts, err := h.BlogService.ListPosts(ctx)
	if err != nil {
		log.L.Error("list posts failed", zap.Error(err))
		redirectWithFlash(c, "/", "error", "Could not load the dashboard.")
		return nil
	}
	messages, err := h.ContactService.ListMessages(ctx)
	if err != nil {
		log.L.Error("list contact messages failed", zap.Error(err))
		redirectWithFlash(c, "/", "error", "Could not load the dashboard.")
		return nil
	}
	count, err := h.VisitorService.Count(ctx)
	if err != nil {
		log.L.Error("visitor count failed", zap.Error(err))
	}

	csrfToken, err := h.Csrf.Token(ctx, actor.SessionID)
	if err != nil {
		log.L.Error("csrf token lookup failed", zap.Error(err))
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"user":          actor,
		"posts":         posts,
		"messages":      messages,
		"visitor_count": count,
		"csrf_token":    csrfToken,
	})
	return nil
}
