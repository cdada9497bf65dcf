// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/models"
)

const testHashKey = "integrity-test-key"

func signedRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(v)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("HashSHA256", hex.EncodeToString(utils.HashBytes(payload, testHashKey)))
	return req
}

func TestVerifyIntegrity_ValidHashPasses(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	env := newHandlerTestEnv(t, testHashKey)
	env.grantAuth()

	env.notes.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		Return(encryptedNote("note-1"), nil)

	req := signedRequest(t, http.MethodPost, "/api/notes/", encryptedNote(""))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestVerifyIntegrity_TamperedBodyRejected(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	env := newHandlerTestEnv(t, testHashKey)
	env.grantAuth()

	req := signedRequest(t, http.MethodPost, "/api/notes/", encryptedNote(""))
	// Re-sign nothing; swap the body after signing.
	tampered, err := json.Marshal(encryptedNote("evil"))
	require.NoError(t, err)
	req.Body = httptest.NewRequest(http.MethodPost, "/api/notes/", bytes.NewReader(tampered)).Body

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgIntegrityCheckFailed, strings.TrimSpace(rec.Body.String()))
}

func TestVerifyIntegrity_MalformedHeaderRejected(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	env := newHandlerTestEnv(t, testHashKey)
	env.grantAuth()

	payload, err := json.Marshal(encryptedNote(""))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/notes/", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("HashSHA256", "not-hex")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgIntegrityCheckFailed, strings.TrimSpace(rec.Body.String()))
}

// Read requests carry no payload, so they pass without a hash header.
func TestVerifyIntegrity_SkipsReads(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	env := newHandlerTestEnv(t, testHashKey)
	env.grantAuth()

	env.notes.EXPECT().
		ListNotes(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, nil)

	rec := env.do(http.MethodGet, "/api/notes/", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyIntegrity_DisabledWithoutKey(t *testing.T) {
	env := newHandlerTestEnv(t, "")
	env.grantAuth()

	env.notes.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		Return(encryptedNote("note-1"), nil)

	// No HashSHA256 header at all.
	rec := env.do(http.MethodPost, "/api/notes/", jsonBody(t, encryptedNote("")), true)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// The middleware must leave the body readable for the handler.
func TestVerifyIntegrity_BodySurvivesVerification(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	env := newHandlerTestEnv(t, testHashKey)
	env.grantAuth()

	want := encryptedNote("")
	want.Title = "dW5pcXVlLXRpdGxl:dGFn"

	env.notes.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, note models.Note) (models.Note, error) {
			assert.Equal(t, want.Title, note.Title)
			return encryptedNote("note-1"), nil
		})

	req := signedRequest(t, http.MethodPost, "/api/notes/", want)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
