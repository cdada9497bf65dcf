package store

import (
	"context"

	"github.com/e2ee-notes/notevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteFilter narrows a note listing. Only plaintext columns can be
// filtered on; every confidential field is opaque to the server.
type NoteFilter struct {
	// CategoryID restricts the result to one category. Nil matches all.
	CategoryID *string

	// Pinned restricts the result by the pinned flag. Nil matches all.
	Pinned *bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	SetEncryptionKeys(ctx context.Context, userID int64, keys models.KeySetup) error
	UpdateEncryptionKeys(ctx context.Context, userID int64, keys models.KeySetup) error
	GetEncryptionKeys(ctx context.Context, userID int64) (models.KeySetup, error)
}

type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, filter NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, userID int64, categoryID string) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, categoryID string) error
}
