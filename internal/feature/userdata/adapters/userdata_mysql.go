// Package adapters provides the repository implementation for the userdata feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/userdata/usecase"
)

// userDataMySQL is a MySQL implementation of the UserDataRepository interface.
type userDataMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure userDataMySQL implements UserDataRepository.
var _ usecase.UserDataRepository = (*userDataMySQL)(nil)

// NewUserDataMySQL creates a new userDataMySQL instance with the given gorm.DB connection.
func NewUserDataMySQL(db *gorm.DB) *userDataMySQL {
	return &userDataMySQL{db: db}
}

// applyFilter narrows a query to the whitelisted filter columns.
func applyFilter(q *gorm.DB, f usecase.Filter) *gorm.DB {
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	if f.Age != nil {
		q = q.Where("age = ?", *f.Age)
	}
	return q
}

// fieldsToColumns converts update fields into a column map for gorm.
func fieldsToColumns(f usecase.Fields) map[string]any {
	cols := map[string]any{}
	if f.Name != nil {
		cols["name"] = *f.Name
	}
	if f.Email != nil {
		cols["email"] = *f.Email
	}
	if f.Age != nil {
		cols["age"] = *f.Age
	}
	return cols
}

// InsertOne persists a single user.
func (r *userDataMySQL) InsertOne(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// InsertMany persists a batch of users in one statement.
func (r *userDataMySQL) InsertMany(ctx context.Context, users []*entity.User) error {
	return r.db.WithContext(ctx).Create(users).Error
}

// UpdateOne applies the fields to the user with the given ID.
func (r *userDataMySQL) UpdateOne(ctx context.Context, id uint, fields usecase.Fields) (usecase.WriteResult, error) {
	var matched int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		return usecase.WriteResult{}, err
	}
	if matched == 0 {
		return usecase.WriteResult{}, nil
	}

	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(fieldsToColumns(fields))
	if result.Error != nil {
		return usecase.WriteResult{}, result.Error
	}
	return usecase.WriteResult{MatchedCount: matched, ModifiedCount: result.RowsAffected}, nil
}

// UpdateMany applies the fields to every user matching the filter.
func (r *userDataMySQL) UpdateMany(ctx context.Context, filter usecase.Filter, fields usecase.Fields) (usecase.WriteResult, error) {
	var matched int64
	if err := applyFilter(r.db.WithContext(ctx).Model(&entity.User{}), filter).Count(&matched).Error; err != nil {
		return usecase.WriteResult{}, err
	}

	result := applyFilter(r.db.WithContext(ctx).Model(&entity.User{}), filter).Updates(fieldsToColumns(fields))
	if result.Error != nil {
		return usecase.WriteResult{}, result.Error
	}
	return usecase.WriteResult{MatchedCount: matched, ModifiedCount: result.RowsAffected}, nil
}

// ReplaceOne overwrites the profile columns of the user with the given ID.
func (r *userDataMySQL) ReplaceOne(ctx context.Context, id uint, user *entity.User) (usecase.WriteResult, error) {
	var matched int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		return usecase.WriteResult{}, err
	}
	if matched == 0 {
		return usecase.WriteResult{}, nil
	}

	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"name":  user.Name,
		"email": user.Email,
		"age":   user.Age,
	})
	if result.Error != nil {
		return usecase.WriteResult{}, result.Error
	}
	return usecase.WriteResult{MatchedCount: matched, ModifiedCount: result.RowsAffected}, nil
}

// DeleteOne removes the user with the given ID.
func (r *userDataMySQL) DeleteOne(ctx context.Context, id uint) (usecase.WriteResult, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if result.Error != nil {
		return usecase.WriteResult{}, result.Error
	}
	return usecase.WriteResult{DeletedCount: result.RowsAffected}, nil
}

// DeleteMany removes every user matching the filter.
func (r *userDataMySQL) DeleteMany(ctx context.Context, filter usecase.Filter) (usecase.WriteResult, error) {
	result := applyFilter(r.db.WithContext(ctx), filter).Delete(&entity.User{})
	if result.Error != nil {
		return usecase.WriteResult{}, result.Error
	}
	return usecase.WriteResult{DeletedCount: result.RowsAffected}, nil
}

// Find returns the users matching the filter, projected to the public columns.
func (r *userDataMySQL) Find(ctx context.Context, filter usecase.Filter) ([]entity.User, error) {
	var users []entity.User
	err := applyFilter(r.db.WithContext(ctx).Model(&entity.User{}), filter).
		Select("id", "name", "email", "age").
		Order("id ASC").
		Find(&users).Error
	return users, err
}

// FindPage returns one page of users in ID order.
func (r *userDataMySQL) FindPage(ctx context.Context, page, limit int) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Select("id", "name", "email", "age").
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, err
}

// Aggregate computes the average age and total count over all users.
func (r *userDataMySQL) Aggregate(ctx context.Context) (usecase.AgeStats, error) {
	var stats usecase.AgeStats
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Select("COALESCE(AVG(age), 0) AS average_age, COUNT(*) AS user_count").
		Scan(&stats).Error
	return stats, err
}

// ListEmails returns every user's email in ID order.
func (r *userDataMySQL) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Order("id ASC").
		Pluck("email", &emails).Error
	return emails, err
}
