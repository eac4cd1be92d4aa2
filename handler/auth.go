package handler

import (
	"errors"
	"net/http"

	"Atrium/config"
	"Atrium/middleware"
	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/jwt"
	"Atrium/pkg/log"
	"Atrium/pkg/snowflake"
	"Atrium/service"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
	Csrf        CsrfStore
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	r.GET("/login", pkgctx.Wrap(h.LoginForm))
	r.POST("/login", pkgctx.Wrap(h.Login))
	r.POST("/login/guest", pkgctx.Wrap(h.GuestLogin))
	r.GET("/sign-up", pkgctx.Wrap(h.SignUpForm))
	r.POST("/sign-up", pkgctx.Wrap(h.SignUp))
	r.GET("/logout", pkgctx.Wrap(h.Logout))
}

func (h *Auth) LoginForm(c *gin.Context) error {
	category, message := flashFromQuery(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"user":    pkgctx.Actor(c),
		"flash":   category,
		"message": message,
	})
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"flash":   "error",
			"message": "Please enter your email and password.",
			"email":   c.PostForm("email"),
		})
		return nil
	}

	user, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"flash":   "error",
				"message": "Incorrect email or password.",
				"email":   req.Email,
			})
			return nil
		}
		return err
	}

	actor := &types.Actor{
		ID:        user.ID,
		FirstName: user.FirstName,
		Role:      user.Role,
		SessionID: uuid.NewString(),
	}
	if err := h.openSession(c, actor); err != nil {
		return err
	}

	redirectWithFlash(c, "/", "success", "Logged in successfully!")
	return nil
}

// GuestLogin opens a restricted session without a user row: guests can
// browse but never touch notes.
func (h *Auth) GuestLogin(c *gin.Context) error {
	actor := &types.Actor{
		ID:        snowflake.GenID(),
		FirstName: "Guest",
		Role:      types.RoleGuest,
		SessionID: uuid.NewString(),
	}
	if err := h.openSession(c, actor); err != nil {
		return err
	}

	redirectWithFlash(c, "/", "success", "Browsing as guest.")
	return nil
}

func (h *Auth) SignUpForm(c *gin.Context) error {
	c.HTML(http.StatusOK, "sign_up.html", gin.H{
		"user": pkgctx.Actor(c),
	})
	return nil
}

func (h *Auth) SignUp(c *gin.Context) error {
	var req types.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "sign_up.html", gin.H{
			"flash":      "error",
			"message":    "Please fill in every field; passwords need at least 7 characters.",
			"email":      c.PostForm("email"),
			"first_name": c.PostForm("first_name"),
		})
		return nil
	}

	user, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.HTML(http.StatusOK, "sign_up.html", gin.H{
				"flash":      "error",
				"message":    "That email is already registered.",
				"email":      req.Email,
				"first_name": req.FirstName,
			})
			return nil
		}
		return err
	}

	actor := &types.Actor{
		ID:        user.ID,
		FirstName: user.FirstName,
		Role:      user.Role,
		SessionID: uuid.NewString(),
	}
	if err := h.openSession(c, actor); err != nil {
		return err
	}

	redirectWithFlash(c, "/", "success", "Account created!")
	return nil
}

func (h *Auth) Logout(c *gin.Context) error {
	if actor := pkgctx.Actor(c); actor != nil {
		if err := h.Csrf.Revoke(c.Request.Context(), actor.SessionID); err != nil {
			log.L.Warn("revoke csrf token failed", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	redirectWithFlash(c, "/", "success", "Logged out.")
	return nil
}

func (h *Auth) openSession(c *gin.Context, actor *types.Actor) error {
	expire := h.Config.Jwt.Expire()
	token, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), actor, jwt.TokenTypeSession, expire)
	if err != nil {
		return err
	}
	if _, err := h.Csrf.Issue(c.Request.Context(), actor.SessionID); err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, token, int(expire.Seconds()), "/", "", false, true)
	log.L.Info("session opened",
		zap.Int64("user_id", actor.ID),
		zap.String("role", actor.Role.String()))
	return nil
}
