package models

import "time"

// Category groups notes. Name and description follow the same ciphertext
// contract as note fields and are encrypted under the category's own sealed
// symmetric key. Color stays plaintext: it is non-sensitive and only used
// for presentation.
type Category struct {
	// ID is the server-assigned unique identifier of the category.
	ID string `json:"id"`

	// UserID is the owner of this category.
	UserID int64 `json:"user_id"`

	// Name holds the encrypted category name.
	Name CipheredText `json:"name"`

	// Description holds the optional encrypted description.
	Description *CipheredText `json:"description,omitempty"`

	// EncryptedKey is the category's symmetric key sealed under the
	// owner's public key.
	EncryptedKey CipheredKey `json:"encryptedKey"`

	// Color is a plaintext hex color string (e.g. "#6B73FF").
	Color string `json:"color"`

	// NoteCount is the number of notes in the category. Populated by list
	// queries; not a stored column.
	NoteCount int64 `json:"noteCount"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c *Category) TableName() string {
	return "categories"
}

// CategoryPlain is the client-side plaintext form of a category.
type CategoryPlain struct {
	Name        string
	Description string
	Color       string
}

// CategoryView couples the decrypted form of a category with its server
// metadata for client display.
type CategoryView struct {
	CategoryPlain

	ID        string
	NoteCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryUpdate represents a partial update of a single category.
// Only non-nil fields will be updated.
type CategoryUpdate struct {
	// ID is the unique identifier of the category to update. Required.
	ID string `json:"id"`

	// UserID is the owner of the category. Required for data isolation.
	UserID int64 `json:"user_id"`

	// Name holds the updated encrypted name. If nil, not updated.
	Name *CipheredText `json:"name,omitempty"`

	// Description holds the updated encrypted description. If nil, not updated.
	Description *CipheredText `json:"description,omitempty"`

	// Color holds the updated plaintext hex color. If nil, not updated.
	Color *string `json:"color,omitempty"`
}
