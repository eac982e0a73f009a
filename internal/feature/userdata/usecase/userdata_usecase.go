// Package usecase implements the business logic for the userdata feature:
// the generic create/read/update/delete/aggregate surface over the users
// collection.
package usecase

import (
	"context"
	"errors"

	"portal_backend/internal/feature/auth/domain/entity"
)

var (
	// ErrNotFound is returned when an operation targets a user that does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrEmptyFilter is returned when a bulk update or delete is attempted
	// without a filter. Unfiltered bulk writes are rejected.
	ErrEmptyFilter = errors.New("filter is required")

	// ErrNoFields is returned when an update carries no updatable fields.
	ErrNoFields = errors.New("update data is required")
)

// Filter narrows bulk operations and queries to matching users.
// Zero-valued fields are not applied.
type Filter struct {
	Name  string
	Email string
	Age   *int
}

// IsZero reports whether no filter criteria are set.
func (f Filter) IsZero() bool {
	return f.Name == "" && f.Email == "" && f.Age == nil
}

// Fields carries the updatable user columns for update operations.
// Nil fields are left untouched.
type Fields struct {
	Name  *string
	Email *string
	Age   *int
}

// IsZero reports whether no fields are set.
func (f Fields) IsZero() bool {
	return f.Name == nil && f.Email == nil && f.Age == nil
}

// WriteResult mirrors the counts a document-store write reports.
type WriteResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	DeletedCount  int64 `json:"deletedCount,omitempty"`
}

// AgeStats is the aggregation result over the users collection.
type AgeStats struct {
	AverageAge float64 `json:"averageAge"`
	UserCount  int64   `json:"userCount"`
}

// UserDataRepository abstracts the persistence layer for the generic
// user-collection operations.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserDataRepository interface {
	InsertOne(ctx context.Context, user *entity.User) error
	InsertMany(ctx context.Context, users []*entity.User) error
	UpdateOne(ctx context.Context, id uint, fields Fields) (WriteResult, error)
	UpdateMany(ctx context.Context, filter Filter, fields Fields) (WriteResult, error)
	ReplaceOne(ctx context.Context, id uint, user *entity.User) (WriteResult, error)
	DeleteOne(ctx context.Context, id uint) (WriteResult, error)
	DeleteMany(ctx context.Context, filter Filter) (WriteResult, error)
	Find(ctx context.Context, filter Filter) ([]entity.User, error)
	FindPage(ctx context.Context, page, limit int) ([]entity.User, error)
	Aggregate(ctx context.Context) (AgeStats, error)
	ListEmails(ctx context.Context) ([]string, error)
}

// UserDataUsecase provides the generic multi-document operations over
// the users collection. It is deliberately thin: request shaping and
// guard checks, with the repository doing the work.
type UserDataUsecase struct {
	repo UserDataRepository
}

// NewUserDataUsecase creates a UserDataUsecase with the given repository.
func NewUserDataUsecase(repo UserDataRepository) *UserDataUsecase {
	return &UserDataUsecase{repo: repo}
}

// InsertOne persists a single user document.
func (u *UserDataUsecase) InsertOne(ctx context.Context, user *entity.User) error {
	return u.repo.InsertOne(ctx, user)
}

// InsertMany persists a batch of user documents.
func (u *UserDataUsecase) InsertMany(ctx context.Context, users []*entity.User) error {
	return u.repo.InsertMany(ctx, users)
}

// UpdateOne applies the given fields to the user with the given ID.
func (u *UserDataUsecase) UpdateOne(ctx context.Context, id uint, fields Fields) (WriteResult, error) {
	if fields.IsZero() {
		return WriteResult{}, ErrNoFields
	}
	return u.repo.UpdateOne(ctx, id, fields)
}

// UpdateMany applies the given fields to every user matching the filter.
func (u *UserDataUsecase) UpdateMany(ctx context.Context, filter Filter, fields Fields) (WriteResult, error) {
	if filter.IsZero() {
		return WriteResult{}, ErrEmptyFilter
	}
	if fields.IsZero() {
		return WriteResult{}, ErrNoFields
	}
	return u.repo.UpdateMany(ctx, filter, fields)
}

// ReplaceOne overwrites the user with the given ID with the new document.
func (u *UserDataUsecase) ReplaceOne(ctx context.Context, id uint, user *entity.User) (WriteResult, error) {
	return u.repo.ReplaceOne(ctx, id, user)
}

// DeleteOne removes the user with the given ID.
func (u *UserDataUsecase) DeleteOne(ctx context.Context, id uint) (WriteResult, error) {
	return u.repo.DeleteOne(ctx, id)
}

// DeleteMany removes every user matching the filter.
func (u *UserDataUsecase) DeleteMany(ctx context.Context, filter Filter) (WriteResult, error) {
	if filter.IsZero() {
		return WriteResult{}, ErrEmptyFilter
	}
	return u.repo.DeleteMany(ctx, filter)
}

// Find returns the users matching the filter, projected to public fields.
func (u *UserDataUsecase) Find(ctx context.Context, filter Filter) ([]entity.User, error) {
	return u.repo.Find(ctx, filter)
}

// FindPage returns one page of users. Page and limit fall back to 1 and
// 10 when out of range.
func (u *UserDataUsecase) FindPage(ctx context.Context, page, limit int) ([]entity.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return u.repo.FindPage(ctx, page, limit)
}

// Aggregate computes the average age and total count over all users.
func (u *UserDataUsecase) Aggregate(ctx context.Context) (AgeStats, error) {
	return u.repo.Aggregate(ctx)
}

// ListEmails returns the email of every user, for the users listing page.
func (u *UserDataUsecase) ListEmails(ctx context.Context) ([]string, error) {
	return u.repo.ListEmails(ctx)
}
