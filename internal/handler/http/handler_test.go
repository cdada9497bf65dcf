// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/e2ee-notes/notevault/internal/config"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/mock"
	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/models"
)

const testUserID int64 = 7

// handlerTestEnv wires a Handler to mocked services and exposes the full
// router so tests exercise middleware and route patterns, not bare
// handler funcs.
type handlerTestEnv struct {
	router     *chi.Mux
	auth       *mock.MockAuthService
	keys       *mock.MockKeyService
	notes      *mock.MockNoteService
	categories *mock.MockCategoryService
	appInfo    *mock.MockAppInfoService
}

func newHandlerTestEnv(t *testing.T, hashKey string) *handlerTestEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &handlerTestEnv{
		auth:       mock.NewMockAuthService(ctrl),
		keys:       mock.NewMockKeyService(ctrl),
		notes:      mock.NewMockNoteService(ctrl),
		categories: mock.NewMockCategoryService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:     env.auth,
		KeyService:      env.keys,
		NoteService:     env.notes,
		CategoryService: env.categories,
		AppInfoService:  env.appInfo,
	}

	h := NewHandler(services, config.ServerApp{HashKey: hashKey}, logger.NewLogger("test"))
	env.router = h.Init()

	return env
}

// grantAuth primes the auth mock to accept the test bearer token once.
func (env *handlerTestEnv) grantAuth() {
	env.auth.EXPECT().
		ParseToken(gomock.Any(), "test-token").
		Return(models.Token{UserID: testUserID}, nil)
}

func (env *handlerTestEnv) do(method, target string, body io.Reader, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(payload)
}
