package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Atrium/middleware"
	pkgctx "Atrium/pkg/context"
	"Atrium/service"
	"Atrium/types"

	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
	Csrf        middleware.TokenValidator
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	r.DELETE("/delete-note/:id",
		middleware.RequireAuth(),
		middleware.RequireNotGuest(),
		middleware.CSRF(h.Csrf),
		pkgctx.Wrap(h.Delete),
	)
}

func (h *Note) Delete(c *gin.Context) error {
	actor := pkgctx.Actor(c)

	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, types.ActionResult{Success: false, Message: "Note not found"})
		return nil
	}

	err = h.NoteService.DeleteNote(c.Request.Context(), actor.ID, noteID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, types.ActionResult{Success: true, Message: "Note deleted successfully"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ActionResult{Success: false, Message: "Note not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, types.ActionResult{Success: false, Message: "You are not authorized to delete this note"})
	default:
		c.JSON(http.StatusInternalServerError, types.ActionResult{Success: false, Message: "An error occurred while deleting the note"})
	}
	return nil
}
