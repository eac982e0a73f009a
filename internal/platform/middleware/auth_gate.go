package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/usecase"
)

// LoginRequiredMessage is flashed when an anonymous session hits a
// protected route.
const LoginRequiredMessage = "You need to log in first"

// AuthRequired gates protected routes: an anonymous session gets a
// flash message and a redirect to the auth page instead of content.
// The bound principal stays on the session for the handler to read.
func AuthRequired(sessions *usecase.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil || !sess.IsAuthenticated() {
			if sess != nil {
				sess.AddFlash("error", LoginRequiredMessage)
				if err := sessions.Save(c.Request.Context(), sess); err != nil {
					slog.Error("failed to save session flash", "error", err)
				}
			}
			c.Redirect(http.StatusFound, "/auth")
			c.Abort()
			return
		}
		c.Next()
	}
}
