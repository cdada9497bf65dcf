// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/mock"
	"github.com/e2ee-notes/notevault/internal/session"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type noteTestEnv struct {
	svc     ClientNoteService
	adapter *mock.MockServerAdapter
	codec   *mock.MockNoteCodec
	cache   *mock.MockLocalNoteRepository
	session *session.Session
}

// newNoteTestEnv wires the service with an unlocked session for user 7.
func newNoteTestEnv(t *testing.T) *noteTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &noteTestEnv{
		adapter: mock.NewMockServerAdapter(ctrl),
		codec:   mock.NewMockNoteCodec(ctrl),
		cache:   mock.NewMockLocalNoteRepository(ctrl),
		session: session.New(),
	}
	env.session.Authenticate("signed-jwt", 7, "alice")
	env.session.Unlock("pub-pem", "priv-pem")
	env.svc = NewClientNoteService(env.adapter, env.codec, env.cache, env.session)
	return env
}

func plainNote() models.NotePlain {
	return models.NotePlain{
		Title:   "Groceries",
		Content: "milk, eggs, bread",
		Tags:    []string{"errands"},
	}
}

func storedNote(id string) models.Note {
	return models.Note{
		ID:           id,
		UserID:       7,
		Title:        "q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb",
		Content:      "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3=",
		Tags:         []models.CipheredText{"R8tY2uI4oP6aS0dF"},
		EncryptedKey: "M1n2B3v4C5x6Z7l8K9j0H1g2F3d4S5a6",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")

// ── Create ────────────────────────────────────────────────────────────────

func TestClientNoteCreate_EncryptsUploadsAndCaches(t *testing.T) {
	env := newNoteTestEnv(t)
	plain := plainNote()
	encrypted := storedNote("")
	created := storedNote("note-1")

	env.codec.EXPECT().PrepareNote(plain, "pub-pem").Return(encrypted, nil)
	env.adapter.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, int64(7), note.UserID)
			return created, nil
		})
	env.cache.EXPECT().SaveNotes(gomock.Any(), int64(7), created).Return(nil)

	view, err := env.svc.Create(context.Background(), plain)
	require.NoError(t, err)
	assert.Equal(t, "note-1", view.ID)
	assert.Equal(t, "Groceries", view.Title)
	assert.Equal(t, created.CreatedAt, view.CreatedAt)
}

func TestClientNoteCreate_LockedSession(t *testing.T) {
	env := newNoteTestEnv(t)
	env.session.Lock()

	_, err := env.svc.Create(context.Background(), plainNote())
	require.ErrorIs(t, err, ErrSessionLocked)
}

func TestClientNoteCreate_NotAuthenticated(t *testing.T) {
	env := newNoteTestEnv(t)
	env.session.Clear()

	_, err := env.svc.Create(context.Background(), plainNote())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Get ───────────────────────────────────────────────────────────────────

func TestClientNoteGet_ServerFirst(t *testing.T) {
	env := newNoteTestEnv(t)
	note := storedNote("note-1")

	env.adapter.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	env.codec.EXPECT().RecoverNote(note, "priv-pem").Return(plainNote(), nil)

	view, err := env.svc.Get(context.Background(), "note-1")
	require.NoError(t, err)
	assert.Equal(t, "note-1", view.ID)
	assert.Equal(t, "milk, eggs, bread", view.Content)
}

func TestClientNoteGet_FallsBackToCacheWhenUnreachable(t *testing.T) {
	env := newNoteTestEnv(t)
	note := storedNote("note-1")

	env.adapter.EXPECT().GetNote(gomock.Any(), "note-1").Return(models.Note{}, errConnRefused)
	env.cache.EXPECT().GetNote(gomock.Any(), int64(7), "note-1").Return(note, nil)
	env.codec.EXPECT().RecoverNote(note, "priv-pem").Return(plainNote(), nil)

	view, err := env.svc.Get(context.Background(), "note-1")
	require.NoError(t, err)
	assert.Equal(t, "note-1", view.ID)
}

func TestClientNoteGet_ServerVerdictSurfaces(t *testing.T) {
	env := newNoteTestEnv(t)

	env.adapter.EXPECT().
		GetNote(gomock.Any(), "missing").
		Return(models.Note{}, serverVerdict(adapter.ErrNotFound, app.MsgNoteNotFound))

	_, err := env.svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

// ── GetAll ────────────────────────────────────────────────────────────────

func TestClientNoteGetAll_RefreshesCacheSnapshot(t *testing.T) {
	env := newNoteTestEnv(t)
	notes := []models.Note{storedNote("note-1"), storedNote("note-2")}

	env.adapter.EXPECT().ListNotes(gomock.Any()).Return(notes, nil)
	env.cache.EXPECT().ReplaceAllNotes(gomock.Any(), int64(7), notes).Return(nil)
	env.codec.EXPECT().RecoverNote(notes[0], "priv-pem").Return(plainNote(), nil)
	env.codec.EXPECT().RecoverNote(notes[1], "priv-pem").Return(plainNote(), nil)

	views, err := env.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "note-1", views[0].ID)
	assert.Equal(t, "note-2", views[1].ID)
}

func TestClientNoteGetAll_ServesCacheWhenUnreachable(t *testing.T) {
	env := newNoteTestEnv(t)
	cached := []models.Note{storedNote("note-1")}

	env.adapter.EXPECT().ListNotes(gomock.Any()).Return(nil, errConnRefused)
	env.cache.EXPECT().GetAllNotes(gomock.Any(), int64(7)).Return(cached, nil)
	env.codec.EXPECT().RecoverNote(cached[0], "priv-pem").Return(plainNote(), nil)

	views, err := env.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
}

func TestClientNoteGetAll_ExpiredToken(t *testing.T) {
	env := newNoteTestEnv(t)

	env.adapter.EXPECT().
		ListNotes(gomock.Any()).
		Return(nil, serverVerdict(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid))

	_, err := env.svc.GetAll(context.Background())
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Update ────────────────────────────────────────────────────────────────

func TestClientNoteUpdate_KeepsSealedKeyAndSendsFullState(t *testing.T) {
	env := newNoteTestEnv(t)
	plain := plainNote()
	current := storedNote("note-1")
	reencrypted := storedNote("note-1")
	updated := storedNote("note-1")

	env.cache.EXPECT().GetNote(gomock.Any(), int64(7), "note-1").Return(current, nil)
	env.codec.EXPECT().ReencryptNote(plain, current.EncryptedKey, "priv-pem").Return(reencrypted, nil)

	var captured models.NoteUpdate
	env.adapter.EXPECT().
		UpdateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.NoteUpdate) (models.Note, error) {
			captured = update
			return updated, nil
		})
	env.cache.EXPECT().SaveNotes(gomock.Any(), int64(7), updated).Return(nil)

	view, err := env.svc.Update(context.Background(), "note-1", plain)
	require.NoError(t, err)
	assert.Equal(t, "note-1", view.ID)

	// Full-state update: every field is present, and a nil plaintext
	// category travels as an empty category id.
	require.NotNil(t, captured.Title)
	require.NotNil(t, captured.Content)
	require.NotNil(t, captured.Tags)
	require.NotNil(t, captured.IsPinned)
	require.NotNil(t, captured.CategoryID)
	assert.Empty(t, *captured.CategoryID)
	assert.Equal(t, int64(7), captured.UserID)
}

func TestClientNoteUpdate_FetchesCurrentFromServerOnCacheMiss(t *testing.T) {
	env := newNoteTestEnv(t)
	plain := plainNote()
	current := storedNote("note-1")

	env.cache.EXPECT().
		GetNote(gomock.Any(), int64(7), "note-1").
		Return(models.Note{}, store.ErrNoteNotFound)
	env.adapter.EXPECT().GetNote(gomock.Any(), "note-1").Return(current, nil)
	env.codec.EXPECT().ReencryptNote(plain, current.EncryptedKey, "priv-pem").Return(current, nil)
	env.adapter.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).Return(current, nil)
	env.cache.EXPECT().SaveNotes(gomock.Any(), int64(7), current).Return(nil)

	_, err := env.svc.Update(context.Background(), "note-1", plain)
	require.NoError(t, err)
}

// ── Delete ────────────────────────────────────────────────────────────────

func TestClientNoteDelete_WorksWhileLocked(t *testing.T) {
	env := newNoteTestEnv(t)
	env.session.Lock()

	env.adapter.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil)
	env.cache.EXPECT().DeleteNote(gomock.Any(), int64(7), "note-1").Return(nil)

	require.NoError(t, env.svc.Delete(context.Background(), "note-1"))
}

func TestClientNoteDelete_Forbidden(t *testing.T) {
	env := newNoteTestEnv(t)

	env.adapter.EXPECT().
		DeleteNote(gomock.Any(), "note-1").
		Return(serverVerdict(adapter.ErrForbidden, app.MsgAccessDenied))

	err := env.svc.Delete(context.Background(), "note-1")
	require.ErrorIs(t, err, ErrUnauthorizedAccess)
}
