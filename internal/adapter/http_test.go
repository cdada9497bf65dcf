// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.Nop()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// signedBearer issues a real HS256 token so the adapter can parse the user
// ID out of the subject claim.
func signedBearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("notevault", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func encryptedTestNote() models.Note {
	categoryID := "3f8e8a52-9a10-4b6e-8c0a-2f9d1d9e4b11"
	return models.Note{
		ID:           "b1a7f3de-4c11-4a4c-9f2b-7e5a0c6d8e21",
		UserID:       42,
		Title:        "q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb",
		Content:      "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3=",
		Tags:         []models.CipheredText{"q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb"},
		EncryptedKey: "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3=",
		CategoryID:   &categoryID,
		IsPinned:     true,
	}
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "empty", address: "", wantErr: true},
		{name: "whitespace", address: "   ", wantErr: true},
		{name: "bare host port", address: "localhost:8080", wantErr: false},
		{name: "full url", address: "https://vault.example.com", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, config.ClientApp{}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	bearer := signedBearer(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Authorization", bearer)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Register(context.Background(), models.User{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.NotEmpty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	bearer := signedBearer(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", bearer)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.User{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, token.SignedString, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid username/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Encryption keys ─────────────────────────────────────────────────────────

func TestSetupKeys_SendsTokenAndIntegrityHash(t *testing.T) {
	keys := models.KeySetup{PublicKey: "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----\n", EncryptedPrivateKey: "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3="}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/encryption/setup", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		wantHash := hex.EncodeToString(utils.HashBytes(body, testHashKey))
		assert.Equal(t, wantHash, r.Header.Get("HashSHA256"))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	require.NoError(t, a.SetupKeys(context.Background(), keys))
}

func TestSetupKeys_AlreadySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("encryption keys already set"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	err := a.SetupKeys(context.Background(), models.KeySetup{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetKeys_Success(t *testing.T) {
	want := models.KeySetup{PublicKey: "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----\n", EncryptedPrivateKey: "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3="}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/encryption/keys", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.GetKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetKeys_NotSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("encryption keys are not set"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.GetKeys(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateKeys_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/auth/encryption/update", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	require.NoError(t, a.UpdateKeys(context.Background(), models.KeySetup{PublicKey: "pk", EncryptedPrivateKey: "epk"}))
}

// ── Notes ───────────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	note := encryptedTestNote()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes/", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		var got models.Note
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, note.Title, got.Title)

		got.CreatedAt = time.Now().UTC()
		got.UpdatedAt = got.CreatedAt
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	created, err := a.CreateNote(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, note.ID, created.ID)
	assert.Equal(t, note.EncryptedKey, created.EncryptedKey)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestGetNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("note not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.GetNote(context.Background(), "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNotes_Success(t *testing.T) {
	want := []models.Note{encryptedTestNote()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	notes, err := a.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, want[0].ID, notes[0].ID)
	assert.Equal(t, want[0].Title, notes[0].Title)
}

func TestUpdateNote_PutsToNotePath(t *testing.T) {
	title := models.CipheredText("q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb")
	update := models.NoteUpdate{ID: "b1a7f3de-4c11-4a4c-9f2b-7e5a0c6d8e21", Title: &title}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/"+update.ID, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Note{ID: update.ID, Title: title})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	updated, err := a.UpdateNote(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, update.ID, updated.ID)
	assert.Equal(t, title, updated.Title)
}

func TestDeleteNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/some-id", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	require.NoError(t, a.DeleteNote(context.Background(), "some-id"))
}

// ── Categories ──────────────────────────────────────────────────────────────

func TestCreateCategory_Success(t *testing.T) {
	category := models.Category{
		ID:           "3f8e8a52-9a10-4b6e-8c0a-2f9d1d9e4b11",
		UserID:       42,
		Name:         "q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb",
		EncryptedKey: "Zz9vX0tNcR1pQ7wE3yU5iO8aS2dF4gH6jK0lB7nM9cV1xZ3=",
		Color:        "#6B73FF",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/categories/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(category)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	created, err := a.CreateCategory(context.Background(), category)
	require.NoError(t, err)
	assert.Equal(t, category.ID, created.ID)
	assert.Equal(t, category.Color, created.Color)
}

func TestListCategories_Success(t *testing.T) {
	want := []models.Category{{ID: "3f8e8a52-9a10-4b6e-8c0a-2f9d1d9e4b11", Name: "q4DPvJt1Fm0Cu3qQzV6RWJ7cL8dK2aXb", NoteCount: 3}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	categories, err := a.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(3), categories[0].NoteCount)
}

func TestDeleteCategory_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	err := a.DeleteCategory(context.Background(), "some-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestGetAppVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"version":"1.2.3"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	version, err := a.GetAppVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}
