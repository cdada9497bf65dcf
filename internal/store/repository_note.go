package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. All CRUD operations run against the "notes" table via
// the embedded [*DB] connection. The repository never inspects the
// encrypted columns; they move through as opaque blobs.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a new note row and returns the note with the
// server-assigned timestamps filled in.
func (p *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	encodedTags, err := encodeTags(note.Tags)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, createNote,
		note.ID,
		note.UserID,
		note.Title,
		note.Content,
		encodedTags,
		note.EncryptedKey,
		note.CategoryID,
		note.IsPinned,
	)

	if err := row.Scan(&note.CreatedAt, &note.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("id", note.ID).
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// GetNote retrieves a single note owned by the given user.
// Returns [ErrNoteNotFound] when no matching row exists.
func (p *noteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, getNote, userID, noteID)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("id", noteID).
			Int64("user_id", userID).
			Msg("failed to load note")
		return models.Note{}, err
	}

	return note, nil
}

// ListNotes retrieves every note owned by the given user that matches the
// plaintext filter. Pinned notes come first, then most recently updated.
func (p *noteRepository) ListNotes(ctx context.Context, userID int64, filter NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// UpdateNote applies a partial update and returns the updated row.
// The sealed key column is untouched; RETURNING carries back the stored
// value so the client sees it unchanged.
//
// Returns [ErrNoteNotFound] when the note does not exist for the user.
func (p *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNoteUpdateQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("id", update.ID).
			Msg("failed to build update query")
		return models.Note{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.UpdateNote").
				Str("id", update.ID).
				Int64("user_id", update.UserID).
				Msg("note not found")
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("id", update.ID).
			Msg("failed to execute update query")
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote removes a note owned by the given user.
// Returns [ErrNoteNotFound] when no row was deleted.
func (p *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteNote, userID, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("id", noteID).
			Int64("user_id", userID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one full note row in the [noteColumns] order.
func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	var rawTags []byte

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&rawTags,
		&note.EncryptedKey,
		&note.CategoryID,
		&note.IsPinned,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	tags, err := decodeTags(rawTags)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	note.Tags = tags

	return note, nil
}
