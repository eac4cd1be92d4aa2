package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Atrium/pkg/csrf"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeValidator struct {
	gotSession string
	gotToken   string
	err        error
}

func (f *fakeValidator) Validate(_ context.Context, sessionID, token string) error {
	f.gotSession = sessionID
	f.gotToken = token
	return f.err
}

func TestCSRF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	actor := &types.Actor{ID: 7, Role: types.RoleMember, SessionID: "sess-7"}

	t.Run("valid token passes through", func(t *testing.T) {
		v := &fakeValidator{}
		r := gin.New()
		r.DELETE("/delete-note/1", setActor(actor), CSRF(v), okHandler)

		req := httptest.NewRequest(http.MethodDelete, "/delete-note/1", nil)
		req.Header.Set(CsrfHeader, "tok-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sess-7", v.gotSession)
		assert.Equal(t, "tok-123", v.gotToken)
	})

	t.Run("invalid token gets JSON 403", func(t *testing.T) {
		v := &fakeValidator{err: csrf.ErrTokenInvalid}
		r := gin.New()
		r.DELETE("/delete-note/1", setActor(actor), CSRF(v), okHandler)

		req := httptest.NewRequest(http.MethodDelete, "/delete-note/1", nil)
		req.Header.Set(CsrfHeader, "stale")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid CSRF token"}`, w.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		v := &fakeValidator{err: csrf.ErrTokenInvalid}
		r := gin.New()
		r.DELETE("/delete-note/1", setActor(actor), CSRF(v), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/delete-note/1", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, v.gotToken)
	})
}
