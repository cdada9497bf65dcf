package store

import "github.com/e2ee-notes/notevault/internal/logger"

// Storages bundles every server-side repository behind one value so the
// service layer receives a single dependency.
type Storages struct {
	UserRepository     UserRepository
	NoteRepository     NoteRepository
	CategoryRepository CategoryRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		NoteRepository:     NewNoteRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
	}
}
