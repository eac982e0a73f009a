// Package middleware provides the gin middleware shared by all routes:
// session resolution, the authorization gate and request logging.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/usecase"
)

const (
	// ContextSession is the gin context key holding the request's session.
	ContextSession = "session"

	// CookieName is the name of the session cookie.
	CookieName = "session_token"
)

// Sessions resolves the request's session from the cookie, creating a
// fresh anonymous session on first contact, and stores it in the gin
// context. A newly issued token is set on the response immediately so
// the cookie precedes any body write.
func Sessions(sessions *usecase.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Error("failed to resolve session", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if sess.ID != token {
			SetSessionCookie(c, sess.ID, sessions.TTL())
		}
		c.Set(ContextSession, sess)
		c.Next()
	}
}

// SessionFromContext returns the session placed in the context by Sessions.
func SessionFromContext(c *gin.Context) *entity.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}

// SetSessionCookie issues the session cookie to the client.
// httpOnly and SameSite=Strict; Secure is off for this deployment.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

// ClearSessionCookie instructs the client to discard its session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
