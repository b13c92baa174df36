package models

import "time"

// User represents an account entity used for authentication and course
// ownership. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName is the user's given name. Non-sensitive, may be shown in UI.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Non-sensitive, may be shown in UI.
	LastName string `json:"lastName"`

	// EmailAddress is the unique address used as the login identifier
	// during authentication.
	EmailAddress string `json:"emailAddress"`

	// Password carries the plain-text password of an incoming registration
	// payload. It is hashed before persistence and never serialized back
	// to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// Public returns the projection of the user that is safe to serialize in
// API responses: identity and display fields only, no credential data.
func (u User) Public() UserPublic {
	return UserPublic{
		UserID:       u.UserID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPublic is the public projection of a [User]. It is returned by the
// current-user endpoint and embedded in course responses as the owner.
type UserPublic struct {
	UserID       int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
