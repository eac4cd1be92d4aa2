package handler

import (
	"errors"
	"net/http"

	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/log"
	"Atrium/service"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Home struct {
	NoteService    service.INoteService
	VisitorService service.IVisitorService
	Csrf           CsrfStore
}

func (h *Home) RegisterRouter(r gin.IRouter) {
	r.GET("/", pkgctx.Wrap(h.Show))
	r.POST("/", pkgctx.Wrap(h.AddNote))
}

func (h *Home) Show(c *gin.Context) error {
	h.VisitorService.Record(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
	category, message := flashFromQuery(c)
	return h.render(c, category, message)
}

// AddNote handles the note form. Anonymous POSTs just render the page;
// guests are turned away before any persistence call.
func (h *Home) AddNote(c *gin.Context) error {
	actor := pkgctx.Actor(c)
	if !actor.Authenticated() {
		return h.render(c, "", "")
	}
	if actor.IsGuest() {
		redirectWithFlash(c, "/", "error", "Guest users cannot add notes.")
		return nil
	}

	var req types.AddNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		return h.render(c, "error", "Invalid input. Please try again.")
	}

	err := h.NoteService.AddNote(c.Request.Context(), actor.ID, req.Note)
	switch {
	case err == nil:
		return h.render(c, "success", "Note added")
	case errors.Is(err, service.ErrNoteTooShort):
		return h.render(c, "error", "Note is too short")
	case errors.Is(err, service.ErrNoteTooLong):
		return h.render(c, "error", "Note is too long")
	default:
		return h.render(c, "error", "Could not save your note. Please try again.")
	}
}

func (h *Home) render(c *gin.Context, category, message string) error {
	ctx := c.Request.Context()
	actor := pkgctx.Actor(c)

	count, err := h.VisitorService.Count(ctx)
	if err != nil {
		log.L.Error("visitor count failed", zap.Error(err))
	}

	var notes any
	csrfToken := ""
	if actor.Authenticated() {
		if actor.CanWriteNotes() {
			if notes, err = h.NoteService.ListForUser(ctx, actor.ID); err != nil {
				log.L.Error("list notes failed", zap.Int64("user_id", actor.ID), zap.Error(err))
			}
		}
		if csrfToken, err = h.Csrf.Token(ctx, actor.SessionID); err != nil {
			log.L.Error("csrf token lookup failed", zap.Error(err))
		}
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"user":          actor,
		"notes":         notes,
		"visitor_count": count,
		"csrf_token":    csrfToken,
		"flash":         category,
		"message":       message,
	})
	return nil
}
