package models

import "github.com/google/uuid"

// User represents a registered account. Guests are not users: anonymous
// participants are tracked by guest identity key only and have no row here.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// DisplayName is shown in place of a name prompt when a signed-in user
	// joins an event.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the RFC 3339 UTC timestamp when the account was created.
	CreatedAt string

	// UpdatedAt is bumped on account changes.
	UpdatedAt string
}

// NewUser creates a user with a generated ID and creation timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := Now()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
