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

// categoryService is the concrete implementation of CategoryService.
// It mirrors noteService: shape validation first, then persistence.
type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator
	uuidGenerator      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewCategoryService constructs a CategoryService wired to the given
// CategoryRepository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validators.NewNotePayloadValidator(),
		uuidGenerator:      utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateCategory validates and persists a new encrypted category.
func (c *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.UserID == 0 {
		return models.Category{}, ErrInvalidDataProvided
	}

	if err := c.validator.Validate(ctx, category); err != nil {
		return models.Category{}, err
	}

	if category.ID == "" {
		category.ID = c.uuidGenerator.Generate()
	}

	created, err := c.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("id", category.ID).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// GetCategory loads a single category with its note count.
func (c *categoryService) GetCategory(ctx context.Context, userID int64, categoryID string) (models.Category, error) {
	if userID == 0 || categoryID == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	category, err := c.categoryRepository.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("category lookup ended with error: %w", err)
	}

	return category, nil
}

// ListCategories loads all categories owned by the user.
func (c *categoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	categories, err := c.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("category listing ended with error: %w", err)
	}

	return categories, nil
}

// UpdateCategory validates and applies a partial category update.
func (c *categoryService) UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error) {
	log := logger.FromContext(ctx)

	if update.UserID == 0 || update.ID == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	if err := c.validator.Validate(ctx, update); err != nil {
		return models.Category{}, err
	}

	updated, err := c.categoryRepository.UpdateCategory(ctx, update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("category update ended with error")
		return models.Category{}, fmt.Errorf("category update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes a category. Notes inside it survive and become
// uncategorized; the database handles the detach.
func (c *categoryService) DeleteCategory(ctx context.Context, userID int64, categoryID string) error {
	if userID == 0 || categoryID == "" {
		return ErrInvalidDataProvided
	}

	if err := c.categoryRepository.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	return nil
}
