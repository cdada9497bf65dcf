// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
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

type categoryTestEnv struct {
	svc     ClientCategoryService
	adapter *mock.MockServerAdapter
	codec   *mock.MockNoteCodec
	cache   *mock.MockLocalCategoryRepository
	session *session.Session
}

func newCategoryTestEnv(t *testing.T) *categoryTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &categoryTestEnv{
		adapter: mock.NewMockServerAdapter(ctrl),
		codec:   mock.NewMockNoteCodec(ctrl),
		cache:   mock.NewMockLocalCategoryRepository(ctrl),
		session: session.New(),
	}
	env.session.Authenticate("signed-jwt", 7, "alice")
	env.session.Unlock("pub-pem", "priv-pem")
	env.svc = NewClientCategoryService(env.adapter, env.codec, env.cache, env.session)
	return env
}

func plainCategory() models.CategoryPlain {
	return models.CategoryPlain{Name: "Work", Description: "office things", Color: "#6B73FF"}
}

func storedCategory(id string) models.Category {
	desc := models.CipheredText("J3k5L7m9N1p3Q5r7S9t1U3v5W7x9Y1z3")
	return models.Category{
		ID:           id,
		UserID:       7,
		Name:         "A1b2C3d4E5f6G7h8I9j0K1l2M3n4O5p6",
		Description:  &desc,
		EncryptedKey: "M1n2B3v4C5x6Z7l8K9j0H1g2F3d4S5a6",
		Color:        "#6B73FF",
		NoteCount:    3,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}

// ── Create ────────────────────────────────────────────────────────────────

func TestClientCategoryCreate_EncryptsUploadsAndCaches(t *testing.T) {
	env := newCategoryTestEnv(t)
	plain := plainCategory()
	encrypted := storedCategory("")
	created := storedCategory("cat-1")

	env.codec.EXPECT().PrepareCategory(plain, "pub-pem").Return(encrypted, nil)
	env.adapter.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, category models.Category) (models.Category, error) {
			assert.Equal(t, int64(7), category.UserID)
			return created, nil
		})
	env.cache.EXPECT().SaveCategories(gomock.Any(), int64(7), created).Return(nil)

	view, err := env.svc.Create(context.Background(), plain)
	require.NoError(t, err)
	assert.Equal(t, "cat-1", view.ID)
	assert.Equal(t, "Work", view.Name)
	assert.Equal(t, int64(3), view.NoteCount)
}

func TestClientCategoryCreate_LockedSession(t *testing.T) {
	env := newCategoryTestEnv(t)
	env.session.Lock()

	_, err := env.svc.Create(context.Background(), plainCategory())
	require.ErrorIs(t, err, ErrSessionLocked)
}

// ── GetAll ────────────────────────────────────────────────────────────────

func TestClientCategoryGetAll_RefreshesCacheSnapshot(t *testing.T) {
	env := newCategoryTestEnv(t)
	categories := []models.Category{storedCategory("cat-1")}

	env.adapter.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)
	env.cache.EXPECT().ReplaceAllCategories(gomock.Any(), int64(7), categories).Return(nil)
	env.codec.EXPECT().RecoverCategory(categories[0], "priv-pem").Return(plainCategory(), nil)

	views, err := env.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cat-1", views[0].ID)
	assert.Equal(t, "Work", views[0].Name)
}

func TestClientCategoryGetAll_ServesCacheWhenUnreachable(t *testing.T) {
	env := newCategoryTestEnv(t)
	cached := []models.Category{storedCategory("cat-1")}

	env.adapter.EXPECT().ListCategories(gomock.Any()).Return(nil, errConnRefused)
	env.cache.EXPECT().GetAllCategories(gomock.Any(), int64(7)).Return(cached, nil)
	env.codec.EXPECT().RecoverCategory(cached[0], "priv-pem").Return(plainCategory(), nil)

	views, err := env.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
}

// ── Update ────────────────────────────────────────────────────────────────

func TestClientCategoryUpdate_UsesCachedSealedKey(t *testing.T) {
	env := newCategoryTestEnv(t)
	plain := plainCategory()
	current := storedCategory("cat-1")
	reencrypted := storedCategory("cat-1")
	updated := storedCategory("cat-1")

	env.cache.EXPECT().
		GetAllCategories(gomock.Any(), int64(7)).
		Return([]models.Category{storedCategory("cat-0"), current}, nil)
	env.codec.EXPECT().ReencryptCategory(plain, current.EncryptedKey, "priv-pem").Return(reencrypted, nil)

	var captured models.CategoryUpdate
	env.adapter.EXPECT().
		UpdateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.CategoryUpdate) (models.Category, error) {
			captured = update
			return updated, nil
		})
	env.cache.EXPECT().SaveCategories(gomock.Any(), int64(7), updated).Return(nil)

	view, err := env.svc.Update(context.Background(), "cat-1", plain)
	require.NoError(t, err)
	assert.Equal(t, "cat-1", view.ID)

	require.NotNil(t, captured.Name)
	require.NotNil(t, captured.Description)
	require.NotNil(t, captured.Color)
	assert.Equal(t, "#6B73FF", *captured.Color)
}

func TestClientCategoryUpdate_FetchesWhenNotCached(t *testing.T) {
	env := newCategoryTestEnv(t)
	plain := plainCategory()
	current := storedCategory("cat-1")

	env.cache.EXPECT().GetAllCategories(gomock.Any(), int64(7)).Return(nil, nil)
	env.adapter.EXPECT().GetCategory(gomock.Any(), "cat-1").Return(current, nil)
	env.codec.EXPECT().ReencryptCategory(plain, current.EncryptedKey, "priv-pem").Return(current, nil)
	env.adapter.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Return(current, nil)
	env.cache.EXPECT().SaveCategories(gomock.Any(), int64(7), current).Return(nil)

	_, err := env.svc.Update(context.Background(), "cat-1", plain)
	require.NoError(t, err)
}

func TestClientCategoryUpdate_NotFound(t *testing.T) {
	env := newCategoryTestEnv(t)

	env.cache.EXPECT().GetAllCategories(gomock.Any(), int64(7)).Return(nil, nil)
	env.adapter.EXPECT().
		GetCategory(gomock.Any(), "missing").
		Return(models.Category{}, serverVerdict(adapter.ErrNotFound, app.MsgCategoryNotFound))

	_, err := env.svc.Update(context.Background(), "missing", plainCategory())
	require.ErrorIs(t, err, store.ErrCategoryNotFound)
}

// ── Delete ────────────────────────────────────────────────────────────────

func TestClientCategoryDelete_EvictsCache(t *testing.T) {
	env := newCategoryTestEnv(t)

	env.adapter.EXPECT().DeleteCategory(gomock.Any(), "cat-1").Return(nil)
	env.cache.EXPECT().DeleteCategory(gomock.Any(), int64(7), "cat-1").Return(nil)

	require.NoError(t, env.svc.Delete(context.Background(), "cat-1"))
}

func TestClientCategoryDelete_NotAuthenticated(t *testing.T) {
	env := newCategoryTestEnv(t)
	env.session.Clear()

	err := env.svc.Delete(context.Background(), "cat-1")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
