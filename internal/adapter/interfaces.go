// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the notevault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/e2ee-notes/notevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notevault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every payload that crosses this boundary is already encrypted; the adapter
// moves opaque ciphertext and never inspects it.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from user.Username and user.Password.
	// On success the bearer token from the Authorization response header is
	// stored via SetToken and returned with the user ID parsed from its
	// subject claim.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates an existing account. On success the bearer token
	// is stored via SetToken and returned with the user ID parsed from its
	// subject claim.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// SetupKeys uploads the freshly generated encryption identity: the PEM
	// public key and the password-wrapped private key. The server accepts it
	// exactly once per account; a repeat attempt returns [ErrConflict].
	SetupKeys(ctx context.Context, keys models.KeySetup) error

	// GetKeys fetches the stored encryption identity for the authenticated
	// user. Returns [ErrNotFound] if encryption setup has not been completed.
	GetKeys(ctx context.Context) (models.KeySetup, error)

	// UpdateKeys replaces the stored encryption identity, e.g. after an
	// encryption password change re-wrapped the private key.
	UpdateKeys(ctx context.Context, keys models.KeySetup) error

	// CreateNote uploads a fully encrypted note and returns the stored
	// record with server-assigned timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote fetches a single encrypted note by ID.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// ListNotes fetches all encrypted notes of the authenticated user,
	// pinned first, then newest first. Filtering happens client-side after
	// decryption, so no server-side filter is exposed here.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// UpdateNote applies a partial update and returns the updated record.
	// The note's sealed key is never part of an update.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note by ID.
	DeleteNote(ctx context.Context, noteID string) error

	// CreateCategory uploads an encrypted category and returns the stored
	// record.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	// GetCategory fetches a single encrypted category by ID.
	GetCategory(ctx context.Context, categoryID string) (models.Category, error)

	// ListCategories fetches all categories of the authenticated user with
	// note counts.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// UpdateCategory applies a partial update and returns the updated
	// record.
	UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error)

	// DeleteCategory removes a category by ID. Notes in it are detached, not
	// deleted.
	DeleteCategory(ctx context.Context, categoryID string) error

	// GetAppVersion fetches the server build version.
	GetAppVersion(ctx context.Context) (string, error)
}
