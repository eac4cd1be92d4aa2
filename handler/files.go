package handler

import (
	"net/http"

	"Atrium/config"
	"Atrium/middleware"
	pkgctx "Atrium/pkg/context"
	"Atrium/service"

	"github.com/gin-gonic/gin"
)

type Files struct {
	Config      *config.Config
	FileService service.IFileService
}

func (h *Files) RegisterRouter(r gin.IRouter) {
	r.GET("/images", middleware.RequireAuth(), pkgctx.Wrap(h.Images))
	r.GET("/certs", pkgctx.Wrap(h.Certs))
}

func (h *Files) Images(c *gin.Context) error {
	c.HTML(http.StatusOK, "images.html", gin.H{
		"user":   pkgctx.Actor(c),
		"images": h.FileService.ListDir(h.Config.Site.ImagesDir),
	})
	return nil
}

func (h *Files) Certs(c *gin.Context) error {
	c.HTML(http.StatusOK, "certs.html", gin.H{
		"user":   pkgctx.Actor(c),
		"images": h.FileService.ListDir(h.Config.Site.CertsDir),
	})
	return nil
}
