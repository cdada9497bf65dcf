// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/validators"
	"github.com/e2ee-notes/notevault/models"
)

func encryptedNote(id string) models.Note {
	return models.Note{
		ID:           id,
		UserID:       testUserID,
		Title:        "bm90ZS10aXRsZQ==:dGFn",
		Content:      "bm90ZS1ib2R5:dGFn",
		Tags:         []models.CipheredText{"dGFnLTA=:dGFn"},
		EncryptedKey: "c2VhbGVkLWtleQ==",
		IsPinned:     false,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreateNote_OwnerComesFromToken(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	// The payload claims another owner; the token must win.
	payload := encryptedNote("")
	payload.UserID = 999

	stored := encryptedNote("note-1")

	env.notes.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, note models.Note) (models.Note, error) {
			assert.Equal(t, testUserID, note.UserID)
			return stored, nil
		})

	rec := env.do(http.MethodPost, "/api/notes/", jsonBody(t, payload), true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "note-1", got.ID)
}

func TestCreateNote_ValidationFailureEnvelope(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, &validators.ValidationError{Fields: []models.FieldError{
			{Field: "title", Msg: "title appears to be unencrypted plain text"},
		}})

	rec := env.do(http.MethodPost, "/api/notes/", jsonBody(t, encryptedNote("")), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, app.MsgValidationFailed, resp.Msg)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "title", resp.Errors[0].Field)
}

func TestCreateNote_MalformedJSON(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	rec := env.do(http.MethodPost, "/api/notes/", strings.NewReader("{not json"), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rec.Body.String()))
}

// ── List ────────────────────────────────────────────────────────────────────

func TestListNotes_NoFilter(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		ListNotes(gomock.Any(), testUserID, store.NoteFilter{}).
		Return([]models.Note{encryptedNote("note-1"), encryptedNote("note-2")}, nil)

	rec := env.do(http.MethodGet, "/api/notes/", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListNotes_QueryParamsBuildFilter(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		ListNotes(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ any, _ int64, filter store.NoteFilter) ([]models.Note, error) {
			require.NotNil(t, filter.CategoryID)
			assert.Equal(t, "cat-1", *filter.CategoryID)
			require.NotNil(t, filter.Pinned)
			assert.True(t, *filter.Pinned)
			return nil, nil
		})

	rec := env.do(http.MethodGet, "/api/notes/?category_id=cat-1&pinned=true", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListNotes_InvalidPinnedParam(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	rec := env.do(http.MethodGet, "/api/notes/?pinned=maybe", nil, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rec.Body.String()))
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGetNote_ByID(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		GetNote(gomock.Any(), testUserID, "note-1").
		Return(encryptedNote("note-1"), nil)

	rec := env.do(http.MethodGet, "/api/notes/note-1", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "note-1", got.ID)
}

func TestGetNote_NotFound(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		GetNote(gomock.Any(), testUserID, "missing").
		Return(models.Note{}, store.ErrNoteNotFound)

	rec := env.do(http.MethodGet, "/api/notes/missing", nil, true)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoteNotFound, strings.TrimSpace(rec.Body.String()))
}

func TestGetNote_ForeignNoteIsForbidden(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		GetNote(gomock.Any(), testUserID, "note-1").
		Return(models.Note{}, service.ErrUnauthorizedAccess)

	rec := env.do(http.MethodGet, "/api/notes/note-1", nil, true)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgAccessDenied, strings.TrimSpace(rec.Body.String()))
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdateNote_IdentityComesFromRouteAndToken(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	title := models.CipheredText("bmV3LXRpdGxl:dGFn")
	payload := models.NoteUpdate{ID: "spoofed", UserID: 999, Title: &title}

	env.notes.EXPECT().
		UpdateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, update models.NoteUpdate) (models.Note, error) {
			assert.Equal(t, "note-1", update.ID)
			assert.Equal(t, testUserID, update.UserID)
			require.NotNil(t, update.Title)
			assert.Equal(t, title, *update.Title)
			return encryptedNote("note-1"), nil
		})

	rec := env.do(http.MethodPut, "/api/notes/note-1", jsonBody(t, payload), true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateNote_NotFound(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		UpdateNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, store.ErrNoteNotFound)

	rec := env.do(http.MethodPut, "/api/notes/missing", jsonBody(t, models.NoteUpdate{}), true)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoteNotFound, strings.TrimSpace(rec.Body.String()))
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDeleteNote_NoContent(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		DeleteNote(gomock.Any(), testUserID, "note-1").
		Return(nil)

	rec := env.do(http.MethodDelete, "/api/notes/note-1", nil, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteNote_RequiresToken(t *testing.T) {
	env := newHandlerTestEnv(t, "")

	rec := env.do(http.MethodDelete, "/api/notes/note-1", nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
