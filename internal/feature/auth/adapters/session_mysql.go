package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/usecase"
)

// sessionMySQL is a MySQL implementation of the SessionRepository
// interface, used when Redis is unavailable. Expired rows are filtered
// on read; DeleteExpired reclaims them.
type sessionMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionMySQL implements SessionRepository.
var _ usecase.SessionRepository = (*sessionMySQL)(nil)

// NewSessionMySQL creates a new sessionMySQL instance.
func NewSessionMySQL(db *gorm.DB) *sessionMySQL {
	return &sessionMySQL{db: db}
}

// Create persists a new session to the database.
func (r *sessionMySQL) Create(ctx context.Context, sess *entity.Session) error {
	model, err := SessionModelFromEntity(sess)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a session by its token. Expired sessions are
// reported as not found, matching the Redis store's TTL behavior.
func (r *sessionMySQL) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity()
}

// Save writes back a session's mutable state.
func (r *sessionMySQL) Save(ctx context.Context, sess *entity.Session) error {
	model, err := SessionModelFromEntity(sess)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", sess.ID).
		Updates(map[string]any{
			"user_id": model.UserID,
			"theme":   model.Theme,
			"flashes": model.Flashes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session from the database. Unknown tokens are not an error.
func (r *sessionMySQL) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionModel{}).Error
}

// DeleteExpired removes all expired sessions from storage and returns
// how many were reclaimed. Meant to run periodically; the Redis store
// does not need it.
func (r *sessionMySQL) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&SessionModel{})
	return result.RowsAffected, result.Error
}
