package store

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"

	"github.com/e2ee-notes/notevault/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, COALESCE(public_key, ''), COALESCE(encrypted_private_key, ''), created_at
    FROM users
    WHERE username = $1;`

	setEncryptionKeys = `UPDATE users
		SET public_key = $1, encrypted_private_key = $2
		WHERE user_id = $3 AND public_key IS NULL;`

	updateEncryptionKeys = `UPDATE users
		SET public_key = $1, encrypted_private_key = $2
		WHERE user_id = $3;`

	getEncryptionKeys = `SELECT public_key, encrypted_private_key
		FROM users
		WHERE user_id = $1;`

	createNote = `INSERT INTO notes (id, user_id, title, content, tags, encrypted_key, category_id, is_pinned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at;`

	getNote = `SELECT id, user_id, title, content, tags, encrypted_key, category_id, is_pinned, created_at, updated_at
		FROM notes
		WHERE user_id = $1 AND id = $2;`

	deleteNote = `DELETE FROM notes
		WHERE user_id = $1 AND id = $2;`

	createCategory = `INSERT INTO categories (id, user_id, name, description, encrypted_key, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at;`

	getCategory = `SELECT c.id, c.user_id, c.name, c.description, c.encrypted_key, c.color, COUNT(n.id), c.created_at, c.updated_at
		FROM categories c
		LEFT JOIN notes n ON n.category_id = c.id
		WHERE c.user_id = $1 AND c.id = $2
		GROUP BY c.id;`

	listCategories = `SELECT c.id, c.user_id, c.name, c.description, c.encrypted_key, c.color, COUNT(n.id), c.created_at, c.updated_at
		FROM categories c
		LEFT JOIN notes n ON n.category_id = c.id
		WHERE c.user_id = $1
		GROUP BY c.id
		ORDER BY c.created_at;`

	deleteCategory = `DELETE FROM categories
		WHERE user_id = $1 AND id = $2;`
)

// noteColumns is the canonical column order for full note rows.
const noteColumns = "id, user_id, title, content, tags, encrypted_key, category_id, is_pinned, created_at, updated_at"

// psql builds queries with PostgreSQL positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListNotesQuery builds the note listing query with optional plaintext
// filters. Pinned notes sort first, most recently updated next.
func buildListNotesQuery(userID int64, filter NoteFilter) (string, []any, error) {
	builder := psql.Select(noteColumns).
		From("notes").
		Where(sq.Eq{"user_id": userID})

	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Pinned != nil {
		builder = builder.Where(sq.Eq{"is_pinned": *filter.Pinned})
	}

	return builder.OrderBy("is_pinned DESC", "updated_at DESC").ToSql()
}

// buildNoteUpdateQuery builds a dynamic UPDATE for the non-nil fields of a
// partial note update. The sealed key column is never touched: updates keep
// the note's original symmetric key.
//
// Returns ErrBuildingSQLQuery when no updatable field is set.
func buildNoteUpdateQuery(update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update("notes").Set("updated_at", sq.Expr("NOW()"))
	hasFields := false

	if update.Title != nil {
		builder = builder.Set("title", string(*update.Title))
		hasFields = true
	}
	if update.Content != nil {
		builder = builder.Set("content", string(*update.Content))
		hasFields = true
	}
	if update.Tags != nil {
		encoded, err := encodeTags(*update.Tags)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("tags", encoded)
		hasFields = true
	}
	if update.CategoryID != nil {
		// an empty string detaches the note from its category
		if *update.CategoryID == "" {
			builder = builder.Set("category_id", nil)
		} else {
			builder = builder.Set("category_id", *update.CategoryID)
		}
		hasFields = true
	}
	if update.IsPinned != nil {
		builder = builder.Set("is_pinned", *update.IsPinned)
		hasFields = true
	}

	if !hasFields {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + noteColumns).
		ToSql()
}

// buildCategoryUpdateQuery builds a dynamic UPDATE for the non-nil fields of
// a partial category update.
func buildCategoryUpdateQuery(update models.CategoryUpdate) (string, []any, error) {
	builder := psql.Update("categories").Set("updated_at", sq.Expr("NOW()"))
	hasFields := false

	if update.Name != nil {
		builder = builder.Set("name", string(*update.Name))
		hasFields = true
	}
	if update.Description != nil {
		builder = builder.Set("description", string(*update.Description))
		hasFields = true
	}
	if update.Color != nil {
		builder = builder.Set("color", *update.Color)
		hasFields = true
	}

	if !hasFields {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING id, user_id, name, description, encrypted_key, color, created_at, updated_at").
		ToSql()
}

// encodeTags serializes the encrypted tag array into the jsonb column form.
func encodeTags(tags []models.CipheredText) ([]byte, error) {
	if tags == nil {
		tags = []models.CipheredText{}
	}
	return json.Marshal(tags)
}

// decodeTags restores the encrypted tag array from its jsonb column form.
func decodeTags(raw []byte) ([]models.CipheredText, error) {
	if len(raw) == 0 {
		return []models.CipheredText{}, nil
	}
	var tags []models.CipheredText
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
