package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Flash messages hop across redirects as query parameters, read back by
// the next page render.
func flashFromQuery(c *gin.Context) (category, message string) {
	return c.Query("flash"), c.Query("message")
}

func redirectWithFlash(c *gin.Context, target, category, message string) {
	c.Redirect(http.StatusFound,
		target+"?flash="+url.QueryEscape(category)+"&message="+url.QueryEscape(message))
}
