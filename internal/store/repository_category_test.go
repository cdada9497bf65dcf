package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/models"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &categoryRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testCategory() models.Category {
	description := models.CipheredText("ZGVzY3JpcHRpb24=")
	return models.Category{
		ID:           "0190b5e2-0000-7000-8000-00000000000a",
		UserID:       1,
		Name:         "bmFtZQ==",
		Description:  &description,
		EncryptedKey: "a2V5",
		Color:        "#ff8800",
	}
}

func categoryRows(categories ...models.Category) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "description",
		"encrypted_key", "color", "note_count", "created_at", "updated_at",
	})
	for _, c := range categories {
		var description any
		if c.Description != nil {
			description = string(*c.Description)
		}
		rows.AddRow(c.ID, c.UserID, string(c.Name), description,
			string(c.EncryptedKey), c.Color, c.NoteCount, c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func TestCreateCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	category := testCategory()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"created_at", "updated_at"}).
		AddRow(now, now)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(category.ID, category.UserID, string(category.Name), string(*category.Description), string(category.EncryptedKey), category.Color).
		WillReturnRows(rows)

	created, err := repo.CreateCategory(ctx, category)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned timestamps")
	}
	if created.NoteCount != 0 {
		t.Errorf("expected zero note count for a fresh category, got %d", created.NoteCount)
	}
}

func TestCreateCategory_DBError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO categories").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateCategory(ctx, testCategory())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	category := testCategory()
	category.NoteCount = 7

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs(category.UserID, category.ID).
		WillReturnRows(categoryRows(category))

	found, err := repo.GetCategory(ctx, category.UserID, category.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != category.ID {
		t.Errorf("expected id %s, got %s", category.ID, found.ID)
	}
	if found.NoteCount != 7 {
		t.Errorf("expected note count 7, got %d", found.NoteCount)
	}
	if found.Description == nil || *found.Description != *category.Description {
		t.Error("expected description to round-trip")
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs(int64(1), "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCategory(ctx, 1, "missing")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestListCategories_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	first := testCategory()
	second := testCategory()
	second.ID = "0190b5e2-0000-7000-8000-00000000000b"
	second.Description = nil

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs(int64(1)).
		WillReturnRows(categoryRows(first, second))

	categories, err := repo.ListCategories(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[1].Description != nil {
		t.Error("expected nil description for the second category")
	}
}

func TestListCategories_Empty(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs(int64(1)).
		WillReturnRows(categoryRows())

	categories, err := repo.ListCategories(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if categories == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestUpdateCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	category := testCategory()
	newColor := "#00ff00"
	category.Color = newColor

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "description",
		"encrypted_key", "color", "created_at", "updated_at",
	}).AddRow(category.ID, category.UserID, string(category.Name), string(*category.Description),
		string(category.EncryptedKey), category.Color, category.CreatedAt, category.UpdatedAt)

	mock.ExpectQuery("UPDATE categories").
		WillReturnRows(rows)

	updated, err := repo.UpdateCategory(ctx, models.CategoryUpdate{
		ID:     category.ID,
		UserID: category.UserID,
		Color:  &newColor,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Color != newColor {
		t.Errorf("expected color %s, got %s", newColor, updated.Color)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	newColor := "#00ff00"

	mock.ExpectQuery("UPDATE categories").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateCategory(ctx, models.CategoryUpdate{ID: "missing", UserID: 1, Color: &newColor})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1), "category-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCategory(ctx, 1, "category-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(1), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCategory(ctx, 1, "missing")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
