// SPDX-License-Identifier: Apache-2.0

package store

const (
	upsertCachedNote = `
		INSERT OR REPLACE INTO notes (
			id,
			user_id,
			title,
			content,
			tags,
			encrypted_key,
			category_id,
			is_pinned,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getCachedNote = `
		SELECT
			id,
			user_id,
			title,
			content,
			tags,
			encrypted_key,
			category_id,
			is_pinned,
			created_at,
			updated_at
		FROM notes
		WHERE user_id = $1 AND id = $2;`

	getAllCachedNotes = `
		SELECT
			id,
			user_id,
			title,
			content,
			tags,
			encrypted_key,
			category_id,
			is_pinned,
			created_at,
			updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY is_pinned DESC, updated_at DESC;`

	deleteCachedNote = `
		DELETE FROM notes
		WHERE user_id = $1 AND id = $2;`

	deleteAllCachedNotes = `
		DELETE FROM notes
		WHERE user_id = $1;`

	upsertCachedCategory = `
		INSERT OR REPLACE INTO categories (
			id,
			user_id,
			name,
			description,
			encrypted_key,
			color,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getAllCachedCategories = `
		SELECT
			id,
			user_id,
			name,
			description,
			encrypted_key,
			color,
			created_at,
			updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at;`

	deleteCachedCategory = `
		DELETE FROM categories
		WHERE user_id = $1 AND id = $2;`

	deleteAllCachedCategories = `
		DELETE FROM categories
		WHERE user_id = $1;`
)
