package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository]. Category rows live in the "categories" table; the
// note count is computed per query via a LEFT JOIN and never stored.
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCategory inserts a new category row and returns the category with
// server-assigned timestamps. NoteCount is zero for a fresh category.
func (p *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createCategory,
		category.ID,
		category.UserID,
		category.Name,
		category.Description,
		category.EncryptedKey,
		category.Color,
	)

	if err := row.Scan(&category.CreatedAt, &category.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.CreateCategory").
			Str("id", category.ID).
			Int64("user_id", category.UserID).
			Msg("failed to insert category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

// GetCategory retrieves a single category with its computed note count.
// Returns [ErrCategoryNotFound] when no matching row exists.
func (p *categoryRepository) GetCategory(ctx context.Context, userID int64, categoryID string) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, getCategory, userID, categoryID)

	category, err := scanCategoryWithCount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).
			Str("func", "categoryRepository.GetCategory").
			Str("id", categoryID).
			Int64("user_id", userID).
			Msg("failed to load category")
		return models.Category{}, err
	}

	return category, nil
}

// ListCategories retrieves every category owned by the given user in
// creation order, each with its computed note count.
func (p *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listCategories, userID)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.ListCategories").
			Int64("user_id", userID).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 10)

	for rows.Next() {
		category, scanErr := scanCategoryWithCount(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "categoryRepository.ListCategories").
				Int64("user_id", userID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "categoryRepository.ListCategories").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// UpdateCategory applies a partial update and returns the updated row.
// The returned NoteCount is zero; list queries carry the real count.
//
// Returns [ErrCategoryNotFound] when the category does not exist.
func (p *categoryRepository) UpdateCategory(ctx context.Context, update models.CategoryUpdate) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCategoryUpdateQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.UpdateCategory").
			Str("id", update.ID).
			Msg("failed to build update query")
		return models.Category{}, err
	}

	var category models.Category
	row := p.DB.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Description,
		&category.EncryptedKey,
		&category.Color,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "categoryRepository.UpdateCategory").
				Str("id", update.ID).
				Int64("user_id", update.UserID).
				Msg("category not found")
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(scanErr).
			Str("func", "categoryRepository.UpdateCategory").
			Str("id", update.ID).
			Msg("failed to execute update query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return category, nil
}

// DeleteCategory removes a category owned by the given user. Notes keep
// existing: the schema detaches them via ON DELETE SET NULL.
//
// Returns [ErrCategoryNotFound] when no row was deleted.
func (p *categoryRepository) DeleteCategory(ctx context.Context, userID int64, categoryID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteCategory, userID, categoryID)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.DeleteCategory").
			Str("id", categoryID).
			Int64("user_id", userID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// scanCategoryWithCount reads one category row including the computed
// note count column.
func scanCategoryWithCount(row rowScanner) (models.Category, error) {
	var category models.Category

	err := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Description,
		&category.EncryptedKey,
		&category.Color,
		&category.NoteCount,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}
