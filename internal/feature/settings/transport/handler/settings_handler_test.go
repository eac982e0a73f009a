package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/settings/usecase"
	"portal_backend/internal/platform/middleware"
	"portal_backend/internal/platform/view"
)

// mockThemeUsecase is a mock implementation of the ThemeUsecase interface.
type mockThemeUsecase struct {
	ThemeFunc    func(sess *entity.Session) string
	SetThemeFunc func(ctx context.Context, sess *entity.Session, theme string) error
}

func (m *mockThemeUsecase) Theme(sess *entity.Session) string {
	if m.ThemeFunc != nil {
		return m.ThemeFunc(sess)
	}
	return entity.ThemeLight
}

func (m *mockThemeUsecase) SetTheme(ctx context.Context, sess *entity.Session, theme string) error {
	if m.SetThemeFunc != nil {
		return m.SetThemeFunc(ctx, sess, theme)
	}
	return nil
}

func newTestRouter(h *SettingsHandler, sess *entity.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(view.MustTemplates())
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextSession, sess)
		c.Next()
	})
	r.GET("/settings", h.Page)
	r.POST("/settings/set-theme", h.SetTheme)
	return r
}

func testSession() *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        "test-token",
		Theme:     entity.ThemeLight,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSettingsHandler_Page(t *testing.T) {
	sess := testSession()
	themes := &mockThemeUsecase{
		ThemeFunc: func(s *entity.Session) string { return entity.ThemeDark },
	}
	r := newTestRouter(NewSettingsHandler(themes), sess)

	req, _ := http.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dark")
}

func TestSettingsHandler_SetTheme(t *testing.T) {
	t.Run("JSON request gets a JSON success response", func(t *testing.T) {
		sess := testSession()
		applied := ""
		themes := &mockThemeUsecase{
			SetThemeFunc: func(ctx context.Context, s *entity.Session, theme string) error {
				applied = theme
				return nil
			},
		}
		r := newTestRouter(NewSettingsHandler(themes), sess)

		req, _ := http.NewRequest(http.MethodPost, "/settings/set-theme", strings.NewReader(`{"theme":"dark"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "Theme updated successfully."}`, w.Body.String())
		assert.Equal(t, "dark", applied)
	})

	t.Run("form request is redirected back to the settings page", func(t *testing.T) {
		sess := testSession()
		r := newTestRouter(NewSettingsHandler(&mockThemeUsecase{}), sess)

		form := url.Values{"theme": {"dark"}}
		req, _ := http.NewRequest(http.MethodPost, "/settings/set-theme", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/settings", w.Header().Get("Location"))
	})

	t.Run("invalid theme is rejected with 400", func(t *testing.T) {
		sess := testSession()
		themes := &mockThemeUsecase{
			SetThemeFunc: func(ctx context.Context, s *entity.Session, theme string) error {
				return usecase.ErrInvalidTheme
			},
		}
		r := newTestRouter(NewSettingsHandler(themes), sess)

		req, _ := http.NewRequest(http.MethodPost, "/settings/set-theme", strings.NewReader(`{"theme":"blue"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid theme")
	})

	t.Run("store failure responds with 500", func(t *testing.T) {
		sess := testSession()
		themes := &mockThemeUsecase{
			SetThemeFunc: func(ctx context.Context, s *entity.Session, theme string) error {
				return assert.AnError
			},
		}
		r := newTestRouter(NewSettingsHandler(themes), sess)

		req, _ := http.NewRequest(http.MethodPost, "/settings/set-theme", strings.NewReader(`{"theme":"dark"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error saving theme")
	})
}
