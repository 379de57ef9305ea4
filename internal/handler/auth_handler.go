package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/microcourses/microcourses-web/internal/config"
	"github.com/microcourses/microcourses-web/internal/flash"
	"github.com/microcourses/microcourses-web/internal/middleware"
	"github.com/microcourses/microcourses-web/internal/session"
	"github.com/microcourses/microcourses-web/internal/upstream"
	"github.com/microcourses/microcourses-web/internal/validator"
	"github.com/microcourses/microcourses-web/internal/viewstate"
)

// AuthHandler serves the login/register page and the session lifecycle
// actions.
type AuthHandler struct {
	client   *upstream.Client
	sessions *session.Manager
	states   *viewstate.Registry
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	client *upstream.Client,
	sessions *session.Manager,
	states *viewstate.Registry,
	cfg *config.Config,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, states: states, cfg: cfg, log: log}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	Role     string `form:"role" binding:"required,oneof=student creator"`
}

// ShowAuth godoc
// GET /
// Renders the combined login/register screen. A browser that already holds a
// live session skips straight to its dashboard.
func (h *AuthHandler) ShowAuth(c *gin.Context) {
	sid, _ := c.Cookie(middleware.CookieSession)
	if sess, err := h.sessions.Load(c.Request.Context(), sid); err == nil && sess != nil {
		c.Redirect(http.StatusFound, sess.Role.DashboardPath())
		return
	}

	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Mode":  c.DefaultQuery("mode", "login"),
		"Flash": flash.Take(c),
	})
}

// Login godoc
// POST /auth/login
// Exchanges credentials for a bearer token, starts the session, and redirects
// to the dashboard matching the token's role claim.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/")
		return
	}

	tok, err := h.client.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		flashUpstreamError(c, err, flash.CodeLoginFailed)
		c.Redirect(http.StatusFound, "/")
		return
	}

	sid := uuid.New().String()
	sess, err := h.sessions.Start(c.Request.Context(), sid, tok.AccessToken)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to start session")
		flash.Error(c, flash.Message(flash.CodeLoginFailed))
		c.Redirect(http.StatusFound, "/")
		return
	}

	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(middleware.CookieSession, sid, maxAge, "/", "", h.cfg.CookieSecure, true)

	h.log.Info().Str("role", string(sess.Role)).Msg("Login succeeded")
	c.Redirect(http.StatusFound, sess.Role.DashboardPath())
}

// Register godoc
// POST /auth/register
// Creates an account, then sends the user back to the login form.
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/?mode=register")
		return
	}

	err := h.client.Register(c.Request.Context(), upstream.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		flashUpstreamError(c, err, flash.CodeRegisterFailed)
		c.Redirect(http.StatusFound, "/?mode=register")
		return
	}

	flash.Success(c, flash.Message(flash.CodeRegistered))
	c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// POST /auth/logout
// Ends the session, drops its view state, clears the cookie, and redirects to
// the login page. Safe to repeat.
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, _ := c.Cookie(middleware.CookieSession)
	if sid != "" {
		if err := h.sessions.End(c.Request.Context(), sid); err != nil {
			h.log.Warn().Err(err).Msg("Failed to clear session token")
		}
		h.states.Drop(sid)
	}

	c.SetCookie(middleware.CookieSession, "", -1, "/", "", h.cfg.CookieSecure, true)
	flash.Success(c, flash.Message(flash.CodeSessionEnded))
	c.Redirect(http.StatusFound, "/")
}
