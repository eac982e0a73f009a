// Package handler provides the HTTP handlers for the settings feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/settings/transport/http/dto"
	"portal_backend/internal/feature/settings/usecase"
	"portal_backend/internal/platform/middleware"
)

// ThemeUsecase defines the theme operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ThemeUsecase interface {
	Theme(sess *entity.Session) string
	SetTheme(ctx context.Context, sess *entity.Session, theme string) error
}

// SettingsHandler handles the settings page and theme updates.
type SettingsHandler struct {
	themes ThemeUsecase
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(themes ThemeUsecase) *SettingsHandler {
	return &SettingsHandler{themes: themes}
}

// Page renders the theme selection form with the session's current theme.
func (h *SettingsHandler) Page(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"Title": "Settings",
		"Theme": h.themes.Theme(sess),
	})
}

// wantsJSON reports whether the client expects a JSON response rather
// than a redirect (the settings page script posts JSON).
func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.ContentType(), "application/json") ||
		c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// SetTheme validates and stores the requested theme in the session.
// Invalid values are rejected with 400, never silently substituted.
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.SetThemeReq
	_ = c.ShouldBind(&req)

	if err := h.themes.SetTheme(c.Request.Context(), sess, req.Theme); err != nil {
		if errors.Is(err, usecase.ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"message": `Invalid theme. Please choose either "light" or "dark".`})
			return
		}
		slog.Error("failed to save theme", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving theme. Please try again later."})
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "Theme updated successfully."})
		return
	}
	c.Redirect(http.StatusFound, "/settings")
}
