package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"portal_backend/internal/feature/auth/domain/entity"
)

// tokenBytes is the entropy of a session token (256 bits).
const tokenBytes = 32

// SessionManager owns the session lifecycle: lazy creation, token
// rotation, persistence and destruction. Handlers receive it as an
// explicit dependency rather than reaching for ambient session state.
type SessionManager struct {
	sessions SessionRepository
	ttl      time.Duration
}

// NewSessionManager creates a SessionManager persisting sessions with the given TTL.
func NewSessionManager(sessions SessionRepository, ttl time.Duration) *SessionManager {
	return &SessionManager{sessions: sessions, ttl: ttl}
}

// newToken generates a cryptographically secure session token.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Resolve loads the session for the given token, or issues a fresh
// anonymous session when the token is empty, unknown or expired.
// An expired or absent session is indistinguishable from first contact.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token != "" {
		sess, err := m.sessions.FindByID(ctx, token)
		switch {
		case err == nil && !sess.IsExpired():
			return sess, nil
		case err != nil && !errors.Is(err, ErrSessionNotFound):
			return nil, err
		}
	}
	return m.Issue(ctx)
}

// Issue creates and persists a fresh anonymous session with the default theme.
func (m *SessionManager) Issue(ctx context.Context) (*entity.Session, error) {
	id, err := newToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sess := &entity.Session{
		ID:        id,
		Theme:     entity.ThemeLight,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Rotate re-issues the session under a new token, carrying over all
// state, and deletes the old token. Called on every authentication
// transition to prevent session fixation.
func (m *SessionManager) Rotate(ctx context.Context, sess *entity.Session) (*entity.Session, error) {
	id, err := newToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rotated := &entity.Session{
		ID:        id,
		UserID:    sess.UserID,
		Theme:     sess.Theme,
		Flashes:   sess.Flashes,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.sessions.Create(ctx, rotated); err != nil {
		return nil, err
	}
	if err := m.sessions.Delete(ctx, sess.ID); err != nil {
		return nil, err
	}
	return rotated, nil
}

// Save persists the session's mutable state.
func (m *SessionManager) Save(ctx context.Context, sess *entity.Session) error {
	return m.sessions.Save(ctx, sess)
}

// Destroy removes the session server-side. The caller is responsible
// for instructing the client to discard its token.
func (m *SessionManager) Destroy(ctx context.Context, sess *entity.Session) error {
	return m.sessions.Delete(ctx, sess.ID)
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// ConsumeFlashes drains the session's flash queue and persists the
// drain, so each message is delivered to exactly one rendered page.
func (m *SessionManager) ConsumeFlashes(ctx context.Context, sess *entity.Session) ([]entity.Flash, error) {
	flashes := sess.TakeFlashes()
	if len(flashes) == 0 {
		return nil, nil
	}
	if err := m.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return flashes, nil
}
