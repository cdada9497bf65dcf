package service

import (
	"context"

	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// KeyService manages the user's encryption identity: the public key stored
// in the clear and the password-wrapped private key blob.
type KeyService interface {
	SetupKeys(ctx context.Context, userID int64, keys models.KeySetup) error
	GetKeys(ctx context.Context, userID int64) (models.KeySetup, error)
	UpdateKeys(ctx context.Context, userID int64, keys models.KeySetup) error
}

// NoteService implements note CRUD over encrypted payloads. Every write is
// shape-validated first; the service never decrypts anything.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, filter store.NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error
}

// CategoryService implements category CRUD over encrypted payloads.
type CategoryService interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, userID int64, categoryID string) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, categoryID string) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
