package adapters

import (
	"encoding/json"
	"time"

	"portal_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the gorm persistence model for sessions. Flashes are
// stored as a JSON blob; they are small and only ever read as a whole.
type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"index"`
	Theme     string `gorm:"size:16;not null;default:light"`
	Flashes   []byte `gorm:"type:blob"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// TableName maps the model to the sessions table.
func (SessionModel) TableName() string {
	return "sessions"
}

// SessionModelFromEntity converts a domain session into its persistence model.
func SessionModelFromEntity(sess *entity.Session) (*SessionModel, error) {
	var flashes []byte
	if len(sess.Flashes) > 0 {
		var err error
		flashes, err = json.Marshal(sess.Flashes)
		if err != nil {
			return nil, err
		}
	}
	return &SessionModel{
		ID:        sess.ID,
		UserID:    sess.UserID,
		Theme:     sess.Theme,
		Flashes:   flashes,
		CreatedAt: sess.CreatedAt,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// ToEntity converts the persistence model back into a domain session.
func (m *SessionModel) ToEntity() (*entity.Session, error) {
	var flashes []entity.Flash
	if len(m.Flashes) > 0 {
		if err := json.Unmarshal(m.Flashes, &flashes); err != nil {
			return nil, err
		}
	}
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Theme:     m.Theme,
		Flashes:   flashes,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}, nil
}
