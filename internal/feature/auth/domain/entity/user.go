// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Age bounds accepted at registration.
const (
	MinAge = 18
	MaxAge = 100
)

// User represents a registered user in the system.
// It contains authentication credentials and profile data shown on rendered pages.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address used as the login identity.
	// It must be unique across all users and is compared case-sensitively.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Name is the display name shown on protected pages.
	Name string `gorm:"size:255;not null" json:"name"`

	// Age is the user's age, constrained to [MinAge, MaxAge] at registration.
	Age int `gorm:"not null" json:"age"`

	// Password is the bcrypt hash of the user's password.
	// This must never hold a plaintext password.
	Password string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
