package validators

import (
	"context"
	"regexp"

	"github.com/e2ee-notes/notevault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldTitle targets the encrypted title of a note payload.
	FieldTitle = "title"

	// FieldContent targets the encrypted body of a note payload.
	FieldContent = "content"

	// FieldTags targets the array of encrypted tags.
	FieldTags = "tags"

	// FieldEncryptedKey targets the sealed per-note symmetric key.
	FieldEncryptedKey = "encryptedKey"

	// FieldPublicKey targets the PEM public key in a key-setup request.
	FieldPublicKey = "publicKey"

	// FieldEncryptedPrivateKey targets the password-wrapped private key.
	FieldEncryptedPrivateKey = "encryptedPrivateKey"

	// FieldName targets the encrypted name of a category payload.
	FieldName = "name"

	// FieldDescription targets the encrypted description of a category.
	FieldDescription = "description"

	// FieldColor targets the plaintext hex color of a category.
	FieldColor = "color"

	// FieldUserID targets the owner identifier of a request.
	FieldUserID = "user_id"

	// FieldNoteID targets the note identifier of an update request.
	FieldNoteID = "id"
)

// hexColor matches a plaintext "#RRGGBB" color value.
var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NotePayloadValidator implements the Validator interface for every model
// crossing the ciphertext boundary: Note, NoteUpdate, Category,
// CategoryUpdate, and KeySetup.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
// All failures of a request are collected into one *ValidationError so the
// API can report every bad field at once.
type NotePayloadValidator struct {
}

// NewNotePayloadValidator constructs a new NotePayloadValidator
// and returns it as the Validator interface.
func NewNotePayloadValidator() Validator {
	return &NotePayloadValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model,
// ErrUnknownField for an unrecognized scoping field, and *ValidationError
// when one or more fields violate the ciphertext contract.
func (v *NotePayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.CategoryUpdate:
		return v.validateCategoryUpdate(ctx, value, fields...)
	case *models.CategoryUpdate:
		return v.validateCategoryUpdate(ctx, *value, fields...)

	case models.KeySetup:
		return v.validateKeySetup(ctx, value, fields...)
	case *models.KeySetup:
		return v.validateKeySetup(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNote validates a full note payload on creation.
//
// Default validated fields (when none specified):
// Title, Content, Tags, EncryptedKey.
//
// Title and content run through the complete ciphertext guard including
// the plaintext heuristic. Tags are checked for base64 shape only, and
// the sealed key skips the heuristic (wrapped keys look random anyway).
func (v *NotePayloadValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldTags, FieldEncryptedKey}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := checkCiphertextField(string(note.Title), MaxTitleLen); err != nil {
				verr.add(FieldTitle, err)
			}
		case FieldContent:
			if err := checkCiphertextField(string(note.Content), MaxContentLen); err != nil {
				verr.add(FieldContent, err)
			}
		case FieldTags:
			for _, tag := range note.Tags {
				if err := checkKeyField(string(tag), MaxTagLen); err != nil {
					verr.add(FieldTags, err)
					break
				}
			}
		case FieldEncryptedKey:
			if err := checkKeyField(string(note.EncryptedKey), MaxEncryptedKeyLen); err != nil {
				verr.add(FieldEncryptedKey, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// validateNoteUpdate validates a partial note update. Field-level checks
// only trigger when the corresponding pointer is non-nil (partial update
// semantics: nil means "do not touch").
//
// After field-level checks, a structural rule is enforced: at least one
// updatable field must be non-nil. Returns ErrNoFieldsToUpdate otherwise.
func (v *NotePayloadValidator) validateNoteUpdate(ctx context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldTitle, FieldContent, FieldTags}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if update.ID == "" {
				verr.add(FieldNoteID, ErrInvalidNoteID)
			}
		case FieldTitle:
			if update.Title != nil {
				if err := checkCiphertextField(string(*update.Title), MaxTitleLen); err != nil {
					verr.add(FieldTitle, err)
				}
			}
		case FieldContent:
			if update.Content != nil {
				if err := checkCiphertextField(string(*update.Content), MaxContentLen); err != nil {
					verr.add(FieldContent, err)
				}
			}
		case FieldTags:
			if update.Tags != nil {
				for _, tag := range *update.Tags {
					if err := checkKeyField(string(tag), MaxTagLen); err != nil {
						verr.add(FieldTags, err)
						break
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Title == nil && update.Content == nil && update.Tags == nil &&
		update.CategoryID == nil && update.IsPinned == nil {
		verr.add(FieldNoteID, ErrNoFieldsToUpdate)
	}

	return verr.orNil()
}

// validateCategory validates a category payload on creation.
//
// Default validated fields: Name, Description, Color, EncryptedKey.
// Description is optional; when present it follows the full ciphertext
// contract. Color is plaintext and only shape-checked as a hex color.
func (v *NotePayloadValidator) validateCategory(ctx context.Context, category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldColor, FieldEncryptedKey}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if err := checkCiphertextField(string(category.Name), MaxCategoryNameLen); err != nil {
				verr.add(FieldName, err)
			}
		case FieldDescription:
			if category.Description != nil {
				if err := checkCiphertextField(string(*category.Description), MaxCategoryDescLen); err != nil {
					verr.add(FieldDescription, err)
				}
			}
		case FieldColor:
			if category.Color != "" && !hexColor.MatchString(category.Color) {
				verr.add(FieldColor, ErrInvalidColor)
			}
		case FieldEncryptedKey:
			if err := checkKeyField(string(category.EncryptedKey), MaxEncryptedKeyLen); err != nil {
				verr.add(FieldEncryptedKey, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// validateCategoryUpdate validates a partial category update with the same
// nil-means-untouched semantics as validateNoteUpdate.
func (v *NotePayloadValidator) validateCategoryUpdate(ctx context.Context, update models.CategoryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldName, FieldDescription, FieldColor}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if update.ID == "" {
				verr.add(FieldNoteID, ErrInvalidNoteID)
			}
		case FieldName:
			if update.Name != nil {
				if err := checkCiphertextField(string(*update.Name), MaxCategoryNameLen); err != nil {
					verr.add(FieldName, err)
				}
			}
		case FieldDescription:
			if update.Description != nil {
				if err := checkCiphertextField(string(*update.Description), MaxCategoryDescLen); err != nil {
					verr.add(FieldDescription, err)
				}
			}
		case FieldColor:
			if update.Color != nil && !hexColor.MatchString(*update.Color) {
				verr.add(FieldColor, ErrInvalidColor)
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Name == nil && update.Description == nil && update.Color == nil {
		verr.add(FieldNoteID, ErrNoFieldsToUpdate)
	}

	return verr.orNil()
}

// validateKeySetup validates the encryption setup payload. Both halves are
// required. The wrapped private key must be shaped like base64; the public
// key is PEM and only bounded in length.
func (v *NotePayloadValidator) validateKeySetup(ctx context.Context, setup models.KeySetup, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey, FieldEncryptedPrivateKey}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldPublicKey:
			if setup.PublicKey == "" {
				verr.add(FieldPublicKey, ErrEmptyField)
			} else if len(setup.PublicKey) > MaxKeyMaterialLen {
				verr.add(FieldPublicKey, ErrTooLong)
			}
		case FieldEncryptedPrivateKey:
			if err := checkKeyField(setup.EncryptedPrivateKey, MaxKeyMaterialLen); err != nil {
				verr.add(FieldEncryptedPrivateKey, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}
