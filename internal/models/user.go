package models

import "time"

// User is a registered account. Users are keyed by username; groups
// reference members by username only.
type User struct {
	// Username is the unique account key.
	Username string `json:"username"`

	// Email is the user's email address (unique).
	Email string `json:"email"`

	// Name is the display name.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}

// NewUser creates a User with the creation time stamped.
func NewUser(username, email, name, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
