package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWrap_ErrorDetailStaysInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", Wrap(func(c *gin.Context) error {
		return errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "3306")
	assert.Contains(t, w.Body.String(), "internal error")
}

func TestWrap_WrittenResponseIsKept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", Wrap(func(c *gin.Context) error {
		c.String(http.StatusTeapot, "already answered")
		return errors.New("late failure")
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "already answered", w.Body.String())
}
