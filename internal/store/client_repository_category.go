package store

import (
	"context"
	"fmt"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
)

type localCategoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalCategoryRepository constructs the SQLite-backed category cache.
func NewLocalCategoryRepository(db *DB, logger *logger.Logger) LocalCategoryRepository {
	return &localCategoryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveCategories upserts the given categories into the local cache.
func (l *localCategoryRepository) SaveCategories(ctx context.Context, userID int64, categories ...models.Category) error {
	log := logger.FromContext(ctx)

	for _, category := range categories {
		_, err := l.DB.ExecContext(ctx, upsertCachedCategory,
			category.ID,
			userID,
			category.Name,
			category.Description,
			category.EncryptedKey,
			category.Color,
			category.CreatedAt,
			category.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localCategoryRepository.SaveCategories").
				Int64("user_id", userID).
				Str("id", category.ID).
				Msg("failed to execute upsert for cached category")
			return fmt.Errorf("failed to save category (id=%s): %w", category.ID, err)
		}
	}

	return nil
}

// GetAllCategories reads every cached category for the user in creation
// order. NoteCount is not cached; it stays zero offline.
func (l *localCategoryRepository) GetAllCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCachedCategories, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localCategoryRepository.GetAllCategories").
			Int64("user_id", userID).
			Msg("failed to query cached categories")
		return nil, fmt.Errorf("failed to query cached categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 10)

	for rows.Next() {
		var category models.Category

		scanErr := rows.Scan(
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
			log.Err(scanErr).
				Str("func", "localCategoryRepository.GetAllCategories").
				Int64("user_id", userID).
				Msg("failed to scan cached category row")
			return nil, fmt.Errorf("failed to scan cached category row: %w", scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// DeleteCategory removes a category from the local cache.
func (l *localCategoryRepository) DeleteCategory(ctx context.Context, userID int64, categoryID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteCachedCategory, userID, categoryID); err != nil {
		log.Err(err).
			Str("func", "localCategoryRepository.DeleteCategory").
			Int64("user_id", userID).
			Str("id", categoryID).
			Msg("failed to delete cached category")
		return fmt.Errorf("failed to delete cached category: %w", err)
	}

	return nil
}

// ReplaceAllCategories swaps the user's cached categories for a fresh
// server snapshot inside one transaction.
func (l *localCategoryRepository) ReplaceAllCategories(ctx context.Context, userID int64, categories []models.Category) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedCategories, userID); err != nil {
		log.Err(err).
			Str("func", "localCategoryRepository.ReplaceAllCategories").
			Int64("user_id", userID).
			Msg("failed to clear cached categories")
		return fmt.Errorf("failed to clear cached categories: %w", err)
	}

	for _, category := range categories {
		_, err = tx.ExecContext(ctx, upsertCachedCategory,
			category.ID,
			userID,
			category.Name,
			category.Description,
			category.EncryptedKey,
			category.Color,
			category.CreatedAt,
			category.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localCategoryRepository.ReplaceAllCategories").
				Int64("user_id", userID).
				Str("id", category.ID).
				Msg("failed to insert cached category")
			return fmt.Errorf("failed to insert cached category (id=%s): %w", category.ID, err)
		}
	}

	return tx.Commit()
}
