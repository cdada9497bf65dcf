package service

import (
	"context"
	"testing"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/validators"
	"github.com/e2ee-notes/notevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNoteRepository struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	getFn    func(ctx context.Context, userID int64, noteID string) (models.Note, error)
	listFn   func(ctx context.Context, userID int64, filter store.NoteFilter) ([]models.Note, error)
	updateFn func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, userID int64, noteID string) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, noteID)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, userID int64, filter store.NoteFilter) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return []models.Note{}, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, noteID)
	}
	return nil
}

func encryptedNote() models.Note {
	return models.Note{
		UserID:       1,
		Title:        "q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb",
		Content:      "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3=",
		Tags:         []models.CipheredText{"R8tY2uI4oP6aS0dF"},
		EncryptedKey: "M1n2B3v4C5x6Z7l8K9j0H1g2F3d4S5a6",
	}
}

func TestCreateNote_AssignsID(t *testing.T) {
	var captured models.Note
	repo := &mockNoteRepository{
		createFn: func(_ context.Context, note models.Note) (models.Note, error) {
			captured = note
			return note, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	created, err := svc.CreateNote(context.Background(), encryptedNote())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, captured.ID, created.ID)
}

func TestCreateNote_KeepsClientID(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	note := encryptedNote()
	note.ID = "client-chosen-id"

	created, err := svc.CreateNote(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, "client-chosen-id", created.ID)
}

func TestCreateNote_RejectsPlaintext(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{
		createFn: func(_ context.Context, _ models.Note) (models.Note, error) {
			t.Fatal("repository must not be reached with invalid payload")
			return models.Note{}, nil
		},
	}, logger.Nop())

	note := encryptedNote()
	note.Title = "My shopping list"

	_, err := svc.CreateNote(context.Background(), note)

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Fields)
	assert.Equal(t, validators.FieldTitle, verr.Fields[0].Field)
}

func TestCreateNote_MissingUserID(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	note := encryptedNote()
	note.UserID = 0

	_, err := svc.CreateNote(context.Background(), note)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetNote_InvalidArgs(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	_, err := svc.GetNote(context.Background(), 0, "id")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.GetNote(context.Background(), 1, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetNote_NotFound(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	_, err := svc.GetNote(context.Background(), 1, "missing")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestListNotes_PassesFilter(t *testing.T) {
	var capturedFilter store.NoteFilter
	repo := &mockNoteRepository{
		listFn: func(_ context.Context, _ int64, filter store.NoteFilter) ([]models.Note, error) {
			capturedFilter = filter
			return []models.Note{}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	categoryID := "cat-1"
	_, err := svc.ListNotes(context.Background(), 1, store.NoteFilter{CategoryID: &categoryID})
	require.NoError(t, err)
	require.NotNil(t, capturedFilter.CategoryID)
	assert.Equal(t, categoryID, *capturedFilter.CategoryID)
}

func TestUpdateNote_PinnedOnly(t *testing.T) {
	repo := &mockNoteRepository{
		updateFn: func(_ context.Context, update models.NoteUpdate) (models.Note, error) {
			return models.Note{ID: update.ID, IsPinned: *update.IsPinned}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	pinned := true
	updated, err := svc.UpdateNote(context.Background(), models.NoteUpdate{
		ID:       "note-1",
		UserID:   1,
		IsPinned: &pinned,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPinned)
}

func TestUpdateNote_RejectsPlaintext(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	title := models.CipheredText("Meeting notes from monday")
	_, err := svc.UpdateNote(context.Background(), models.NoteUpdate{
		ID:     "note-1",
		UserID: 1,
		Title:  &title,
	})

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpdateNote_NoFields(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	_, err := svc.UpdateNote(context.Background(), models.NoteUpdate{ID: "note-1", UserID: 1})

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteNote(t *testing.T) {
	deleted := false
	repo := &mockNoteRepository{
		deleteFn: func(_ context.Context, userID int64, noteID string) error {
			deleted = true
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "note-1", noteID)
			return nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	require.NoError(t, svc.DeleteNote(context.Background(), 1, "note-1"))
	assert.True(t, deleted)
}
