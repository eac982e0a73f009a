// Package usecase implements the business logic for the settings feature.
package usecase

import (
	"context"
	"errors"

	"portal_backend/internal/feature/auth/domain/entity"
	authusecase "portal_backend/internal/feature/auth/usecase"
)

// ErrInvalidTheme is returned when a requested theme is not one of the
// supported values. Invalid input is rejected, never substituted.
var ErrInvalidTheme = errors.New(`invalid theme, please choose either "light" or "dark"`)

// ThemeUsecase reads and writes the session's UI theme preference.
// It shares the session lifecycle with authentication but is otherwise
// independent of it.
type ThemeUsecase struct {
	sessions *authusecase.SessionManager
}

// NewThemeUsecase creates a ThemeUsecase persisting through the given session manager.
func NewThemeUsecase(sessions *authusecase.SessionManager) *ThemeUsecase {
	return &ThemeUsecase{sessions: sessions}
}

// Theme returns the session's theme preference, defaulting to light.
func (u *ThemeUsecase) Theme(sess *entity.Session) string {
	if sess.Theme == "" {
		return entity.ThemeLight
	}
	return sess.Theme
}

// SetTheme validates and persists the requested theme into the session.
// Setting the already-current theme is a no-op success.
func (u *ThemeUsecase) SetTheme(ctx context.Context, sess *entity.Session, theme string) error {
	if !entity.ValidTheme(theme) {
		return ErrInvalidTheme
	}
	if sess.Theme == theme {
		return nil
	}
	sess.Theme = theme
	return u.sessions.Save(ctx, sess)
}
