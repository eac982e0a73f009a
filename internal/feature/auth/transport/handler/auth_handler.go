// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/domain"
	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/transport/http/dto"
	"portal_backend/internal/feature/auth/usecase"
	settingsusecase "portal_backend/internal/feature/settings/usecase"
	"portal_backend/internal/platform/middleware"
	"portal_backend/internal/platform/view"
)

// AuthUsecase defines the authentication operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a user from the raw form input and returns the
	// rotated, authenticated session.
	Register(ctx context.Context, sess *entity.Session, in usecase.RegisterInput) (*entity.Session, error)
	// Login verifies credentials and returns the rotated, authenticated session.
	Login(ctx context.Context, sess *entity.Session, email, password string) (*entity.Session, error)
	// Logout destroys the session server-side.
	Logout(ctx context.Context, sess *entity.Session) error
	// CurrentUser returns the principal bound to the session.
	CurrentUser(ctx context.Context, sess *entity.Session) (*entity.User, error)
}

// SessionWriter defines the session persistence operations the handler needs.
type SessionWriter interface {
	Save(ctx context.Context, sess *entity.Session) error
	ConsumeFlashes(ctx context.Context, sess *entity.Session) ([]entity.Flash, error)
	TTL() time.Duration
}

// ThemeSetter sets the session's theme preference.
type ThemeSetter interface {
	SetTheme(ctx context.Context, sess *entity.Session, theme string) error
}

// AuthHandler handles the auth page, registration, login, logout and the
// protected page.
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionWriter
	themes   ThemeSetter
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, sessions SessionWriter, themes ThemeSetter) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, themes: themes}
}

// flashAndRedirect queues a flash message and sends the client back to the auth page.
func (h *AuthHandler) flashAndRedirect(c *gin.Context, sess *entity.Session, text string) {
	sess.AddFlash("error", text)
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		slog.Error("failed to save session flash", "error", err)
	}
	c.Redirect(http.StatusFound, "/auth")
}

// Page renders the login/registration form, draining any queued flash messages.
func (h *AuthHandler) Page(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	flashes, err := h.sessions.ConsumeFlashes(c.Request.Context(), sess)
	if err != nil {
		slog.Error("failed to consume flashes", "error", err)
		view.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Title":   "Authorization",
		"Theme":   sess.Theme,
		"Flashes": flashes,
	})
}

// Register handles the registration form submission.
// - validation and conflict failures flash a message and redirect back to /auth
// - persistence failures render the generic error page
// - success rotates the session cookie and redirects to the protected page
func (h *AuthHandler) Register(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.RegisterReq
	_ = c.ShouldBind(&req)

	rotated, err := h.auth.Register(c.Request.Context(), sess, usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Age:             req.Age,
	})
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.flashAndRedirect(c, sess, vErr.Message)
		case errors.Is(err, domain.ErrUserAlreadyExists):
			h.flashAndRedirect(c, sess, "User already exists")
		case errors.Is(err, domain.ErrAlreadyAuthenticated):
			h.flashAndRedirect(c, sess, "You are already logged in")
		default:
			slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
			view.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	middleware.SetSessionCookie(c, rotated.ID, h.sessions.TTL())
	c.Redirect(http.StatusFound, "/auth/protected")
}

// Login handles the login form submission. Failed credentials flash one
// generic message; whether the email exists is never revealed.
func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.LoginReq
	_ = c.ShouldBind(&req)

	rotated, err := h.auth.Login(c.Request.Context(), sess, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			h.flashAndRedirect(c, sess, "Invalid email or password")
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		view.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	middleware.SetSessionCookie(c, rotated.ID, h.sessions.TTL())
	c.Redirect(http.StatusFound, "/auth/protected")
}

// Logout destroys the session server-side, clears the cookie and
// redirects home. Logging out an anonymous session is a no-op redirect.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if err := h.auth.Logout(c.Request.Context(), sess); err != nil {
		slog.Error("logout failed", "error", err)
		view.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// Protected renders the gated page with the principal's display name.
// The authorization gate runs before this handler.
func (h *AuthHandler) Protected(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	user, err := h.auth.CurrentUser(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Principal vanished from the store; treat as unauthenticated.
			c.Redirect(http.StatusFound, "/auth")
			return
		}
		slog.Error("failed to load current user", "error", err)
		view.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.HTML(http.StatusOK, "protected.html", gin.H{
		"Title": "Protected",
		"Theme": sess.Theme,
		"Name":  user.Name,
	})
}

// SetTheme handles the theme buttons on the auth page. An invalid value
// is logged and ignored; the client is redirected back either way.
func (h *AuthHandler) SetTheme(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.SetThemeReq
	_ = c.ShouldBind(&req)

	if err := h.themes.SetTheme(c.Request.Context(), sess, req.Theme); err != nil {
		if !errors.Is(err, settingsusecase.ErrInvalidTheme) {
			slog.Error("failed to save theme", "error", err)
			view.Error(c, http.StatusInternalServerError, "Server error")
			return
		}
		slog.Warn("ignoring invalid theme", "theme", req.Theme)
	}
	c.Redirect(http.StatusFound, "/auth")
}
