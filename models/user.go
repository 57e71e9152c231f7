package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest and must never leave the server.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login of the user, compared case-sensitively as stored.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of register and login requests.
// Password is plaintext and lives only for the duration of the request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
