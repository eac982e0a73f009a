package entity

import "time"

// Theme values a session may carry.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme reports whether t is one of the supported UI themes.
func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark
}

// Flash is a one-shot notification attached to a session.
// It is queued by a handler and consumed by the next rendered page.
type Flash struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Session represents the server-side state correlated to one client
// via an opaque cookie token. It exists for every request: the session
// middleware creates it lazily on first contact.
type Session struct {
	ID        string    `json:"id"`        // Opaque token (base64url, 256 bits of entropy)
	UserID    uint      `json:"userId"`    // Bound principal; zero while anonymous
	Theme     string    `json:"theme"`     // UI theme preference, ThemeLight by default
	Flashes   []Flash   `json:"flashes"`   // Pending one-shot messages, oldest first
	CreatedAt time.Time `json:"createdAt"` // Session creation time
	ExpiresAt time.Time `json:"expiresAt"` // Session expiration time
}

// IsAuthenticated returns true if a principal is bound to the session.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != 0
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// AddFlash queues a one-shot message for the next rendered page.
func (s *Session) AddFlash(kind, text string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Text: text})
}

// TakeFlashes returns all queued flashes in order and clears the queue.
// The caller must persist the session for the drain to stick.
func (s *Session) TakeFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
