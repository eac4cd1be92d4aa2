package handler

import (
	"net/http"

	pkgctx "Atrium/pkg/context"
	"Atrium/service"
	"Atrium/types"

	"github.com/gin-gonic/gin"
)

type Contact struct {
	ContactService service.IContactService
}

func (h *Contact) RegisterRouter(r gin.IRouter) {
	r.GET("/contact", pkgctx.Wrap(h.Show))
	r.POST("/contact", pkgctx.Wrap(h.Submit))
}

func (h *Contact) Show(c *gin.Context) error {
	category, message := flashFromQuery(c)
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"user":    pkgctx.Actor(c),
		"flash":   category,
		"message": message,
	})
	return nil
}

// Submit validates shape first; nothing reaches the store on a bad form.
// After that, persistence and notification fail independently: the
// visitor only ever sees success or success-with-warning.
func (h *Contact) Submit(c *gin.Context) error {
	var req types.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"user":    pkgctx.Actor(c),
			"flash":   "error",
			"message": "Please provide your name, a valid email address, and a message.",
			"name":    c.PostForm("name"),
			"email":   c.PostForm("email"),
			"body":    c.PostForm("message"),
		})
		return nil
	}

	emailed := h.ContactService.Submit(c.Request.Context(), &req)
	if !emailed {
		redirectWithFlash(c, "/", "warning", "Your message was logged but could not be emailed.")
		return nil
	}
	redirectWithFlash(c, "/", "success", "Thank you for your message! I'll get back to you soon.")
	return nil
}
