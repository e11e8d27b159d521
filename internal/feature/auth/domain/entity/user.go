// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role values assignable to a user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the server-generated UUID identifying the user.
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the unique index is what
	// enforces uniqueness (there is no pre-insert existence check).
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Role is either "admin" or "user". New users default to "user".
	Role string `gorm:"size:16;not null;default:user"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// IsAdmin returns true if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
