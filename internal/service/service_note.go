package service

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/internal/validators"
	"github.com/e2ee-notes/notevault/models"
)

// noteService is the concrete implementation of NoteService. Every inbound
// payload passes the ciphertext shape validator before it reaches storage;
// validation failures come back as *validators.ValidationError so the
// transport layer can render per-field messages.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	uuidGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewNotePayloadValidator(),
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateNote validates and persists a new encrypted note. A missing ID is
// filled with a fresh UUID so clients may supply their own identifiers for
// offline-first flows or let the server assign one.
func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if note.UserID == 0 {
		return models.Note{}, ErrInvalidDataProvided
	}

	if err := n.validator.Validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	if note.ID == "" {
		note.ID = n.uuidGenerator.Generate()
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("id", note.ID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// GetNote loads a single note owned by the user.
func (n *noteService) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if userID == 0 || noteID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := n.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// ListNotes loads the user's notes matching the plaintext filter. Filtering
// on encrypted columns is impossible server-side, so the filter covers only
// category and pinned state.
func (n *noteService) ListNotes(ctx context.Context, userID int64, filter store.NoteFilter) ([]models.Note, error) {
	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	notes, err := n.noteRepository.ListNotes(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("note listing ended with error: %w", err)
	}

	return notes, nil
}

// UpdateNote validates and applies a partial update. Only fields present in
// the request are validated and written. The note's sealed key never
// changes on update: re-encrypted fields keep using the original key.
func (n *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.UserID == 0 || update.ID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	if err := n.validator.Validate(ctx, update); err != nil {
		return models.Note{}, err
	}

	updated, err := n.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes a note owned by the user.
func (n *noteService) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	if userID == 0 || noteID == "" {
		return ErrInvalidDataProvided
	}

	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
