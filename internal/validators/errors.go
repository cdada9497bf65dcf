package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/e2ee-notes/notevault/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyField        = errors.New("field is required")
	ErrTooLong           = errors.New("field exceeds maximum length")
	ErrNotBase64         = errors.New("must be valid base64 encoded data")
	ErrPlaintextDetected = errors.New("appears to be unencrypted plain text; all sensitive data must be encrypted client-side before sending to the API")
	ErrInvalidColor      = errors.New("must be a hex color like #6B73FF")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidNoteID     = errors.New("invalid note ID")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
)

// ValidationError aggregates every failing field of a request so that the
// handler can answer with one entry per field, as the API contract requires.
// It implements the error interface.
type ValidationError struct {
	Fields []models.FieldError
}

// Error implements the error interface: a compact single-line summary
// listing the failing field names.
func (v *ValidationError) Error() string {
	names := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// add records one failing field. Reason becomes the user-facing message,
// prefixed with the field name the way the original API phrased it.
func (v *ValidationError) add(field string, reason error) {
	v.Fields = append(v.Fields, models.FieldError{
		Field: field,
		Msg:   fmt.Sprintf("%s %s", field, reason.Error()),
	})
}

// orNil returns the accumulated error, or nil when every field passed.
func (v *ValidationError) orNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
