package store

import (
	"context"

	"github.com/e2ee-notes/notevault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalNoteRepository is the low-level local cache of encrypted notes.
// Rows mirror the server state byte for byte; nothing in the cache is
// ever decrypted at rest.
type LocalNoteRepository interface {
	SaveNotes(ctx context.Context, userID int64, notes ...models.Note) error
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	DeleteNote(ctx context.Context, userID int64, noteID string) error
	ReplaceAllNotes(ctx context.Context, userID int64, notes []models.Note) error
}

// LocalCategoryRepository is the local cache of encrypted categories.
type LocalCategoryRepository interface {
	SaveCategories(ctx context.Context, userID int64, categories ...models.Category) error
	GetAllCategories(ctx context.Context, userID int64) ([]models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, categoryID string) error
	ReplaceAllCategories(ctx context.Context, userID int64, categories []models.Category) error
}
