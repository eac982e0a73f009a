package usecase

import (
	"context"

	"portal_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session state.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its token.
	// It returns ErrSessionNotFound when the token is unknown or expired.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Save writes back the mutable fields of an existing session
	// (theme, flashes, bound principal) without extending its expiry.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes a session from the storage. Deleting an unknown
	// token is not an error.
	Delete(ctx context.Context, id string) error
}
