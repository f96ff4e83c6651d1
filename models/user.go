package models

import "time"

// Roles assignable to a user account. Any other value is rejected at
// registration time.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user (UUID).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never plaintext and never serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin and drives ownership scoping.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated principal attached to a request context
// after the auth middleware resolves a token to a stored user.
type Identity struct {
	ID   string
	Role string
}

// IsAdmin reports whether the identity bypasses ownership scoping.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Identity returns the scoping principal for the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role}
}
