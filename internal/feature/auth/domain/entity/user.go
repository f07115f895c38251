// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the directory.
// Records are append-only: a user is never mutated after registration
// except for the password hash, and never deleted, so IDs are never reused.
type User struct {
	// ID is the unique identifier for the user, assigned sequentially.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address, stored lowercase.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Username is the user's display handle, case-sensitive.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`

	// Phone is the contact number collected at registration.
	Phone string `gorm:"size:32" json:"phone"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}
