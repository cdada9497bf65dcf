package models

import "time"

// Note is the primary persistence model for a user's note.
// Every confidential field is encrypted client-side before it reaches the
// server; the database stores title, content, tags and the sealed note key
// as opaque blobs. Only CategoryID, IsPinned and the timestamps are plaintext.
type Note struct {
	// ID is the server-assigned unique identifier of the note.
	ID string `json:"id"`

	// UserID is the owner of this note.
	UserID int64 `json:"user_id"`

	// Title holds the encrypted note title.
	Title CipheredText `json:"title"`

	// Content holds the encrypted note body.
	Content CipheredText `json:"content"`

	// Tags holds the encrypted tags. Each element is independently
	// encrypted under the note's symmetric key.
	Tags []CipheredText `json:"tags"`

	// EncryptedKey is the note's symmetric key sealed under the owner's
	// public key. It is created once per note and is not rotated on update.
	EncryptedKey CipheredKey `json:"encryptedKey"`

	// CategoryID is an optional plaintext reference to a category.
	CategoryID *string `json:"categoryId"`

	// IsPinned marks the note as pinned. Non-sensitive, used for ordering.
	IsPinned bool `json:"isPinned"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}

// NotePlain is the client-side plaintext form of a note. It exists only in
// client memory; it is never serialized to the wire or to local storage.
type NotePlain struct {
	Title      string
	Content    string
	Tags       []string
	CategoryID *string
	IsPinned   bool
}

// NoteView couples the decrypted form of a note with its server metadata.
// It is what client screens render; like NotePlain it never leaves client
// memory.
type NoteView struct {
	NotePlain

	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteUpdate represents a partial update of a single note.
// Only non-nil fields will be updated. The sealed key is deliberately
// absent: updates re-encrypt under the note's original symmetric key.
type NoteUpdate struct {
	// ID is the unique identifier of the note to update. Required.
	ID string `json:"id"`

	// UserID is the owner of the note. Required for data isolation.
	UserID int64 `json:"user_id"`

	// Title holds the updated encrypted title. If nil, not updated.
	Title *CipheredText `json:"title,omitempty"`

	// Content holds the updated encrypted body. If nil, not updated.
	Content *CipheredText `json:"content,omitempty"`

	// Tags holds the updated encrypted tags. If nil, not updated.
	Tags *[]CipheredText `json:"tags,omitempty"`

	// CategoryID moves the note to another category. If nil, not updated.
	CategoryID *string `json:"categoryId,omitempty"`

	// IsPinned toggles the pinned flag. If nil, not updated.
	IsPinned *bool `json:"isPinned,omitempty"`
}
