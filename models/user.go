package models

import "time"

// User represents an account entity used for authentication and for storing
// the owner's encryption identity. The server keeps the public key in the
// clear (it is not secret) and the private key only in password-wrapped form.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password carries the plaintext login password only on inbound
	// register/login requests. It is never persisted and never returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored HMAC-SHA256 hash of the login password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// PublicKey is the PEM-encoded public half of the user's key pair.
	// Stored server-side in the clear; empty until encryption setup.
	PublicKey string `json:"publicKey,omitempty"`

	// EncryptedPrivateKey is the user's private key wrapped under a secret
	// derived from the encryption password. Useless without that password;
	// the server never holds a usable plaintext private key.
	EncryptedPrivateKey string `json:"encryptedPrivateKey,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// KeySetup is the encryption setup payload: the client-generated public key
// and the password-wrapped private key. Both are required.
type KeySetup struct {
	PublicKey           string `json:"publicKey"`
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
}
