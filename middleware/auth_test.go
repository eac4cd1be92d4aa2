package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/jwt"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-secret")

func setActor(actor *types.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			pkgctx.SetActor(c, actor)
		}
		c.Next()
	}
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	actor := &types.Actor{ID: 7, FirstName: "Ada", Role: types.RoleMember, SessionID: "sess-7"}
	token, err := jwt.GenerateToken(testSecret, actor, jwt.TokenTypeSession, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(OptionalAuth(testSecret))
	r.GET("/", func(c *gin.Context) {
		got := pkgctx.Actor(c)
		if got == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, got.FirstName)
	})

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{name: "valid cookie", cookie: token, want: "Ada"},
		{name: "no cookie", cookie: "", want: "anonymous"},
		{name: "garbage cookie", cookie: "not-a-token", want: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestOptionalAuth_BearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	actor := &types.Actor{ID: 7, FirstName: "Ada", Role: types.RoleMember, SessionID: "sess-7"}
	token, err := jwt.GenerateToken(testSecret, actor, jwt.TokenTypeSession, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(OptionalAuth(testSecret))
	r.GET("/", func(c *gin.Context) {
		require.NotNil(t, pkgctx.Actor(c))
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	member := &types.Actor{ID: 7, Role: types.RoleMember, SessionID: "sess-7"}

	t.Run("anonymous page redirects to login", func(t *testing.T) {
		r := gin.New()
		r.GET("/images", RequireAuth(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/login?flash=error")
	})

	t.Run("anonymous delete gets JSON 403", func(t *testing.T) {
		r := gin.New()
		r.DELETE("/delete-note/1", RequireAuth(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/delete-note/1", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		r := gin.New()
		r.GET("/images", setActor(member), RequireAuth(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireNotGuest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("guest blocked with JSON 403", func(t *testing.T) {
		guest := &types.Actor{ID: 9, Role: types.RoleGuest, SessionID: "sess-9"}
		r := gin.New()
		r.DELETE("/delete-note/1", setActor(guest), RequireNotGuest(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/delete-note/1", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Guest users cannot delete notes"}`, w.Body.String())
	})

	t.Run("member passes through", func(t *testing.T) {
		member := &types.Actor{ID: 7, Role: types.RoleMember, SessionID: "sess-7"}
		r := gin.New()
		r.DELETE("/delete-note/1", setActor(member), RequireNotGuest(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/delete-note/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	member := &types.Actor{ID: 7, Role: types.RoleMember, SessionID: "sess-7"}
	admin := &types.Actor{ID: 1, Role: types.RoleAdmin, SessionID: "sess-1"}

	t.Run("member delete gets JSON 403", func(t *testing.T) {
		r := gin.New()
		r.DELETE("/delete_post/1", setActor(member), RequireAdmin(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/delete_post/1", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
	})

	t.Run("member page redirects home with flash", func(t *testing.T) {
		r := gin.New()
		r.GET("/post", setActor(member), RequireAdmin(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/post", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/?flash=error")
	})

	t.Run("admin passes through", func(t *testing.T) {
		r := gin.New()
		r.GET("/post", setActor(admin), RequireAdmin(), okHandler)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/post", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
