package service

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/crypto"
	"github.com/e2ee-notes/notevault/internal/session"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/models"
)

type clientCategoryService struct {
	adapter adapter.ServerAdapter
	codec   crypto.NoteCodec
	cache   store.LocalCategoryRepository
	session *session.Session
}

// NewClientCategoryService builds the plaintext-facing category service,
// mirroring the note service semantics.
func NewClientCategoryService(serverAdapter adapter.ServerAdapter, codec crypto.NoteCodec, cache store.LocalCategoryRepository, sess *session.Session) ClientCategoryService {
	return &clientCategoryService{adapter: serverAdapter, codec: codec, cache: cache, session: sess}
}

func (c *clientCategoryService) requireUnlocked() error {
	if !c.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !c.session.IsUnlocked() {
		return ErrSessionLocked
	}
	return nil
}

// Create implements [ClientCategoryService].
func (c *clientCategoryService) Create(ctx context.Context, plain models.CategoryPlain) (models.CategoryView, error) {
	if err := c.requireUnlocked(); err != nil {
		return models.CategoryView{}, err
	}

	encrypted, err := c.codec.PrepareCategory(plain, c.session.PublicKey())
	if err != nil {
		return models.CategoryView{}, fmt.Errorf("encrypt category: %w", err)
	}
	encrypted.UserID = c.session.UserID()

	created, err := c.adapter.CreateCategory(ctx, encrypted)
	if err != nil {
		return models.CategoryView{}, mapAdapterError(err)
	}

	if err = c.cache.SaveCategories(ctx, c.session.UserID(), created); err != nil {
		return models.CategoryView{}, fmt.Errorf("cache created category: %w", err)
	}

	return categoryView(created, plain), nil
}

// GetAll implements [ClientCategoryService]. A successful server read
// replaces the cache snapshot; an unreachable server serves the cache.
// Note counts come from the server and stay zero for cached rows.
func (c *clientCategoryService) GetAll(ctx context.Context) ([]models.CategoryView, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}

	categories, err := c.adapter.ListCategories(ctx)
	switch {
	case err == nil:
		if cacheErr := c.cache.ReplaceAllCategories(ctx, c.session.UserID(), categories); cacheErr != nil {
			return nil, fmt.Errorf("refresh category cache: %w", cacheErr)
		}
	case isServerUnreachable(err):
		categories, err = c.cache.GetAllCategories(ctx, c.session.UserID())
		if err != nil {
			return nil, fmt.Errorf("get cached categories: %w", err)
		}
	default:
		return nil, mapAdapterError(err)
	}

	views := make([]models.CategoryView, 0, len(categories))
	for _, category := range categories {
		plain, err := c.codec.RecoverCategory(category, c.session.PrivateKey())
		if err != nil {
			return nil, fmt.Errorf("decrypt category %s: %w", category.ID, err)
		}
		views = append(views, categoryView(category, plain))
	}

	return views, nil
}

// Update implements [ClientCategoryService]. Name and description are
// re-encrypted under fresh field nonces; the category's sealed key does not
// change.
func (c *clientCategoryService) Update(ctx context.Context, categoryID string, plain models.CategoryPlain) (models.CategoryView, error) {
	if err := c.requireUnlocked(); err != nil {
		return models.CategoryView{}, err
	}

	current, err := c.findCategory(ctx, categoryID)
	if err != nil {
		return models.CategoryView{}, err
	}

	encrypted, err := c.codec.ReencryptCategory(plain, current.EncryptedKey, c.session.PrivateKey())
	if err != nil {
		return models.CategoryView{}, fmt.Errorf("reencrypt category: %w", err)
	}

	update := models.CategoryUpdate{
		ID:     categoryID,
		UserID: c.session.UserID(),
		Name:   &encrypted.Name,
		Color:  &plain.Color,
	}
	if encrypted.Description != nil {
		update.Description = encrypted.Description
	}

	updated, err := c.adapter.UpdateCategory(ctx, update)
	if err != nil {
		return models.CategoryView{}, mapAdapterError(err)
	}

	if err = c.cache.SaveCategories(ctx, c.session.UserID(), updated); err != nil {
		return models.CategoryView{}, fmt.Errorf("cache updated category: %w", err)
	}

	return categoryView(updated, plain), nil
}

// Delete implements [ClientCategoryService].
func (c *clientCategoryService) Delete(ctx context.Context, categoryID string) error {
	if !c.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := c.adapter.DeleteCategory(ctx, categoryID); err != nil {
		return mapAdapterError(err)
	}

	if err := c.cache.DeleteCategory(ctx, c.session.UserID(), categoryID); err != nil {
		return fmt.Errorf("evict deleted category from cache: %w", err)
	}

	return nil
}

// findCategory loads the current record, preferring the cache because the
// sealed key it carries is immutable.
func (c *clientCategoryService) findCategory(ctx context.Context, categoryID string) (models.Category, error) {
	cached, err := c.cache.GetAllCategories(ctx, c.session.UserID())
	if err == nil {
		for _, category := range cached {
			if category.ID == categoryID {
				return category, nil
			}
		}
	}

	category, err := c.adapter.GetCategory(ctx, categoryID)
	if err != nil {
		return models.Category{}, mapAdapterError(err)
	}
	return category, nil
}

func categoryView(category models.Category, plain models.CategoryPlain) models.CategoryView {
	return models.CategoryView{
		CategoryPlain: plain,
		ID:            category.ID,
		NoteCount:     category.NoteCount,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
