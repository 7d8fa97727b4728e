package models

// User represents a registered user account.
//
// Users are created on registration and never mutated or deleted.
type User struct {
	// Email is the unique identifier for the user and the login name.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// Registration currently stores the login username here as well,
	// so FullName equals Email for accounts created through the API.
	FullName string `json:"full_name"`

	// HashedPassword is the bcrypt hash of the user's password.
	// Never serialized in API responses.
	HashedPassword string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}
