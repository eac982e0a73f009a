package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/usecase"
)

// testSession builds a session expiring in the given duration.
func testSession(id string, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		Theme:     entity.ThemeLight,
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionMySQL_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	sess := testSession("token-1", time.Hour)
	sess.UserID = 4
	sess.AddFlash("error", "pending message")
	require.NoError(t, repo.Create(context.Background(), sess))

	found, err := repo.FindByID(context.Background(), "token-1")
	require.NoError(t, err)

	assert.Equal(t, uint(4), found.UserID, "principal does not match")
	assert.Equal(t, entity.ThemeLight, found.Theme, "theme does not match")
	require.Len(t, found.Flashes, 1, "flashes were not persisted")
	assert.Equal(t, "pending message", found.Flashes[0].Text)
}

func TestSessionMySQL_FindByID(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		_, err := repo.FindByID(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("expired session is reported as not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		require.NoError(t, repo.Create(context.Background(), testSession("stale", -time.Minute)))

		_, err := repo.FindByID(context.Background(), "stale")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionMySQL_Save(t *testing.T) {
	t.Run("state changes are written back", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		sess := testSession("token-2", time.Hour)
		require.NoError(t, repo.Create(context.Background(), sess))

		sess.UserID = 9
		sess.Theme = entity.ThemeDark
		require.NoError(t, repo.Save(context.Background(), sess))

		found, err := repo.FindByID(context.Background(), "token-2")
		require.NoError(t, err)
		assert.Equal(t, uint(9), found.UserID)
		assert.Equal(t, entity.ThemeDark, found.Theme)
	})

	t.Run("draining flashes persists the empty queue", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		sess := testSession("token-3", time.Hour)
		sess.AddFlash("error", "once")
		require.NoError(t, repo.Create(context.Background(), sess))

		sess.TakeFlashes()
		require.NoError(t, repo.Save(context.Background(), sess))

		found, err := repo.FindByID(context.Background(), "token-3")
		require.NoError(t, err)
		assert.Empty(t, found.Flashes, "flashes survived the drain")
	})

	t.Run("saving an unknown session fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		err := repo.Save(context.Background(), testSession("ghost", time.Hour))

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	sess := testSession("token-4", time.Hour)
	require.NoError(t, repo.Create(context.Background(), sess))

	require.NoError(t, repo.Delete(context.Background(), "token-4"))

	_, err := repo.FindByID(context.Background(), "token-4")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(context.Background(), "token-4"))
}

func TestSessionMySQL_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	require.NoError(t, repo.Create(context.Background(), testSession("live", time.Hour)))
	require.NoError(t, repo.Create(context.Background(), testSession("dead-1", -time.Minute)))
	require.NoError(t, repo.Create(context.Background(), testSession("dead-2", -time.Hour)))

	deleted, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = repo.FindByID(context.Background(), "live")
	assert.NoError(t, err, "live session was reclaimed")
}
