package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Email:    "test@example.com",
			Name:     "Test",
			Age:      30,
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Email: "duplicate@example.com", Name: "A", Age: 30, Password: "p1"}
		require.NoError(t, repo.Create(context.Background(), user1), "failed to create first user")

		user2 := &entity.User{Email: "duplicate@example.com", Name: "B", Age: 40, Password: "p2"}
		err := repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := &entity.User{Email: "find@example.com", Name: "F", Age: 25, Password: "hashed"}
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Name, found.Name, "name does not match")
		assert.Equal(t, expected.Age, found.Age, "age does not match")
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "missing@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("email comparison is exact", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		seeded := &entity.User{Email: "Case@example.com", Name: "C", Age: 30, Password: "hashed"}
		require.NoError(t, repo.Create(context.Background(), seeded))

		found, err := repo.FindByEmail(context.Background(), "Case@example.com")
		assert.NoError(t, err)
		assert.Equal(t, seeded.ID, found.ID)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := &entity.User{Email: "byid@example.com", Name: "I", Age: 50, Password: "hashed"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
