package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "cache.db")},
	}

	storages, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)

	return storages
}

func cachedNote(id string) models.Note {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Note{
		ID:           id,
		UserID:       1,
		Title:        "dGl0bGU=",
		Content:      "Y29udGVudA==",
		Tags:         []models.CipheredText{"dGFnMQ=="},
		EncryptedKey: "a2V5",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestLocalNoteRepository_SaveAndGet(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	note := cachedNote("note-1")
	require.NoError(t, storages.NoteRepository.SaveNotes(ctx, 1, note))

	got, err := storages.NoteRepository.GetNote(ctx, 1, "note-1")
	require.NoError(t, err)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)
	assert.Equal(t, note.EncryptedKey, got.EncryptedKey)
	assert.Equal(t, note.Tags, got.Tags)
}

func TestLocalNoteRepository_GetMissing(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	_, err := storages.NoteRepository.GetNote(ctx, 1, "missing")
	require.True(t, errors.Is(err, ErrNoteNotFound))
}

func TestLocalNoteRepository_SaveIsUpsert(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	note := cachedNote("note-1")
	require.NoError(t, storages.NoteRepository.SaveNotes(ctx, 1, note))

	note.Title = "bmV3IHRpdGxl"
	require.NoError(t, storages.NoteRepository.SaveNotes(ctx, 1, note))

	all, err := storages.NoteRepository.GetAllNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, note.Title, all[0].Title)
}

func TestLocalNoteRepository_PinnedFirst(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	plain := cachedNote("note-1")
	pinned := cachedNote("note-2")
	pinned.IsPinned = true

	require.NoError(t, storages.NoteRepository.SaveNotes(ctx, 1, plain, pinned))

	all, err := storages.NoteRepository.GetAllNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "note-2", all[0].ID)
}

func TestLocalNoteRepository_ReplaceAll(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.NoteRepository.SaveNotes(ctx, 1, cachedNote("stale-1"), cachedNote("stale-2")))

	fresh := []models.Note{cachedNote("fresh-1")}
	require.NoError(t, storages.NoteRepository.ReplaceAllNotes(ctx, 1, fresh))

	all, err := storages.NoteRepository.GetAllNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "fresh-1", all[0].ID)
}

func TestLocalNoteRepository_Delete(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.NoteRepository.SaveNotes(ctx, 1, cachedNote("note-1")))
	require.NoError(t, storages.NoteRepository.DeleteNote(ctx, 1, "note-1"))

	_, err := storages.NoteRepository.GetNote(ctx, 1, "note-1")
	require.True(t, errors.Is(err, ErrNoteNotFound))

	// deleting an uncached note is a no-op
	require.NoError(t, storages.NoteRepository.DeleteNote(ctx, 1, "note-1"))
}

func cachedCategory(id string) models.Category {
	now := time.Now().UTC().Truncate(time.Second)
	description := models.CipheredText("ZGVzY3JpcHRpb24=")
	return models.Category{
		ID:           id,
		UserID:       1,
		Name:         "bmFtZQ==",
		Description:  &description,
		EncryptedKey: "a2V5",
		Color:        "#ff8800",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestLocalCategoryRepository_RoundTrip(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	category := cachedCategory("category-1")
	require.NoError(t, storages.CategoryRepository.SaveCategories(ctx, 1, category))

	all, err := storages.CategoryRepository.GetAllCategories(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, category.Name, all[0].Name)
	require.NotNil(t, all[0].Description)
	assert.Equal(t, *category.Description, *all[0].Description)
}

func TestLocalCategoryRepository_ReplaceAllAndDelete(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.CategoryRepository.SaveCategories(ctx, 1, cachedCategory("stale")))

	fresh := []models.Category{cachedCategory("fresh")}
	require.NoError(t, storages.CategoryRepository.ReplaceAllCategories(ctx, 1, fresh))

	all, err := storages.CategoryRepository.GetAllCategories(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "fresh", all[0].ID)

	require.NoError(t, storages.CategoryRepository.DeleteCategory(ctx, 1, "fresh"))

	all, err = storages.CategoryRepository.GetAllCategories(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, all)
}
