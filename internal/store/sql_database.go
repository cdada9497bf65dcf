package store

import (
	"database/sql"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/migrations"
)

// DB wraps the shared *sql.DB connection together with the error
// classifier used by retry-aware callers.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the server-side PostgreSQL schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the client-side SQLite cache schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}
