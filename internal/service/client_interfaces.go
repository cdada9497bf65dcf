package service

import (
	"context"
	"time"

	"github.com/e2ee-notes/notevault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account and key
// lifecycle. It owns the two-stage unlock flow: Register/Login authenticate
// the session with the server, SetupEncryption/Unlock make the private key
// available for decryption.
type ClientAuthService interface {
	// Register creates a new account on the server and authenticates the
	// session with the returned token. Encryption setup is a separate step:
	// a freshly registered account has no keys yet.
	Register(ctx context.Context, username, password string) error

	// Login authenticates the user against the server and stores the
	// bearer token in the session. The session stays locked until Unlock
	// verifies the encryption password.
	Login(ctx context.Context, username, password string) error

	// SetupEncryption generates the RSA key pair, wraps the private key
	// under encryptionPassword, uploads the identity to the server, and
	// unlocks the session. Called exactly once per account, right after
	// registration. Returns [store.ErrKeysAlreadySet] (mapped from the
	// server conflict) if setup already happened elsewhere.
	SetupEncryption(ctx context.Context, encryptionPassword string) error

	// Unlock fetches the wrapped encryption identity from the server and
	// unwraps the private key with encryptionPassword. A wrong password is
	// indistinguishable from corruption; both yield an error wrapping
	// [crypto.ErrWrongPassword]. Returns [store.ErrKeysNotSet] if the
	// account has not completed encryption setup.
	Unlock(ctx context.Context, encryptionPassword string) error

	// ChangeEncryptionPassword re-wraps the private key under newPassword
	// and replaces the stored identity on the server. Note payloads are
	// untouched: the key pair does not change, only its wrapping.
	ChangeEncryptionPassword(ctx context.Context, oldPassword, newPassword string) error

	// Lock drops the unwrapped key material but keeps the session
	// authenticated.
	Lock()

	// Logout clears the whole session: token, identity, and key material.
	Logout()
}

// ClientNoteService defines the client-side contract for working with notes
// in plaintext. Implementations encrypt before anything leaves the process
// and decrypt on the way back; the session must be unlocked for every
// operation.
//
// Reads are server-first with a fallback to the local encrypted cache when
// the server is unreachable. Writes require the server and update the cache
// on success.
type ClientNoteService interface {
	// Create encrypts plain under a fresh note key, uploads it, and caches
	// the stored record.
	Create(ctx context.Context, plain models.NotePlain) (models.NoteView, error)

	// Get fetches and decrypts a single note, falling back to the cache
	// when the server is unreachable.
	Get(ctx context.Context, noteID string) (models.NoteView, error)

	// GetAll fetches and decrypts all notes of the authenticated user,
	// pinned first. On success the cache is replaced with the fresh
	// snapshot; when the server is unreachable the cache is served instead.
	GetAll(ctx context.Context) ([]models.NoteView, error)

	// Update re-encrypts the edited note under its original note key and
	// uploads the change. The sealed key is never rotated.
	Update(ctx context.Context, noteID string, plain models.NotePlain) (models.NoteView, error)

	// Delete removes the note from the server and the cache.
	Delete(ctx context.Context, noteID string) error
}

// ClientCategoryService defines the client-side contract for categories,
// mirroring [ClientNoteService] semantics.
type ClientCategoryService interface {
	// Create encrypts plain under a fresh category key, uploads it, and
	// caches the stored record.
	Create(ctx context.Context, plain models.CategoryPlain) (models.CategoryView, error)

	// GetAll fetches and decrypts all categories with note counts, falling
	// back to the cache when the server is unreachable.
	GetAll(ctx context.Context) ([]models.CategoryView, error)

	// Update re-encrypts the edited category under its original key and
	// uploads the change.
	Update(ctx context.Context, categoryID string, plain models.CategoryPlain) (models.CategoryView, error)

	// Delete removes the category from the server and the cache. Notes in
	// it are detached server-side, not deleted.
	Delete(ctx context.Context, categoryID string) error
}

// ClientSyncService defines the contract for refreshing the local encrypted
// cache from the server.
type ClientSyncService interface {
	// FullSync downloads the complete note and category sets of the
	// authenticated user and atomically replaces the local cache snapshot.
	// Payloads stay encrypted throughout; no key material is needed.
	FullSync(ctx context.Context) error
}

// ClientSyncJob defines the contract for a background worker that
// periodically calls FullSync while the session is authenticated.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
