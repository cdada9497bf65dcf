package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
)

type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalNoteRepository constructs the SQLite-backed note cache.
func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &localNoteRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveNotes upserts the given notes into the local cache.
func (l *localNoteRepository) SaveNotes(ctx context.Context, userID int64, notes ...models.Note) error {
	log := logger.FromContext(ctx)

	for _, note := range notes {
		encodedTags, err := encodeTags(note.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags (id=%s): %w", note.ID, err)
		}

		_, err = l.DB.ExecContext(ctx, upsertCachedNote,
			note.ID,
			userID,
			note.Title,
			note.Content,
			encodedTags,
			note.EncryptedKey,
			note.CategoryID,
			note.IsPinned,
			note.CreatedAt,
			note.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localNoteRepository.SaveNotes").
				Int64("user_id", userID).
				Str("id", note.ID).
				Msg("failed to execute upsert for cached note")
			return fmt.Errorf("failed to save note (id=%s): %w", note.ID, err)
		}
	}

	return nil
}

// GetNote reads a single cached note. Returns [ErrNoteNotFound] when the
// note is not in the cache.
func (l *localNoteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getCachedNote, userID, noteID)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "localNoteRepository.GetNote").
			Int64("user_id", userID).
			Str("id", noteID).
			Msg("failed to scan cached note row")
		return models.Note{}, fmt.Errorf("failed to scan cached note row: %w", err)
	}

	return note, nil
}

// GetAllNotes reads every cached note for the user, pinned first.
func (l *localNoteRepository) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCachedNotes, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("failed to query cached notes")
		return nil, fmt.Errorf("failed to query cached notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localNoteRepository.GetAllNotes").
				Int64("user_id", userID).
				Msg("failed to scan cached note row")
			return nil, fmt.Errorf("failed to scan cached note row: %w", scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// DeleteNote removes a note from the local cache. Deleting a note that is
// not cached is not an error; the cache only mirrors server state.
func (l *localNoteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteCachedNote, userID, noteID); err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.DeleteNote").
			Int64("user_id", userID).
			Str("id", noteID).
			Msg("failed to delete cached note")
		return fmt.Errorf("failed to delete cached note: %w", err)
	}

	return nil
}

// ReplaceAllNotes swaps the user's whole cache for a fresh server snapshot
// inside one transaction.
func (l *localNoteRepository) ReplaceAllNotes(ctx context.Context, userID int64, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedNotes, userID); err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.ReplaceAllNotes").
			Int64("user_id", userID).
			Msg("failed to clear cached notes")
		return fmt.Errorf("failed to clear cached notes: %w", err)
	}

	for _, note := range notes {
		encodedTags, encodeErr := encodeTags(note.Tags)
		if encodeErr != nil {
			return fmt.Errorf("failed to encode tags (id=%s): %w", note.ID, encodeErr)
		}

		_, err = tx.ExecContext(ctx, upsertCachedNote,
			note.ID,
			userID,
			note.Title,
			note.Content,
			encodedTags,
			note.EncryptedKey,
			note.CategoryID,
			note.IsPinned,
			note.CreatedAt,
			note.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localNoteRepository.ReplaceAllNotes").
				Int64("user_id", userID).
				Str("id", note.ID).
				Msg("failed to insert cached note")
			return fmt.Errorf("failed to insert cached note (id=%s): %w", note.ID, err)
		}
	}

	return tx.Commit()
}
