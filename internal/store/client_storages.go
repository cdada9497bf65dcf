package store

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Every repository holds
// encrypted rows only; the cache is as opaque as the server's tables.
type ClientStorages struct {
	// NoteRepository is the SQLite-backed cache of encrypted notes.
	NoteRepository LocalNoteRepository

	// CategoryRepository is the SQLite-backed cache of encrypted categories.
	CategoryRepository LocalCategoryRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending cache schema migrations via [DB.MigrateClient].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		NoteRepository:     NewLocalNoteRepository(db, logger),
		CategoryRepository: NewLocalCategoryRepository(db, logger),
	}, nil
}
