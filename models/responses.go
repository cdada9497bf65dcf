package models

// APIResponse is the uniform JSON envelope returned by every API endpoint.
// Success reports whether the request was processed; Msg carries a short
// human-readable summary; Errors lists per-field validation failures;
// Data holds the endpoint-specific payload.
type APIResponse struct {
	Success bool         `json:"success"`
	Msg     string       `json:"msg,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Data    any          `json:"data,omitempty"`
}

// FieldError describes a single failing field in a validation error
// response.
type FieldError struct {
	// Field is the JSON name of the failing field (e.g. "title").
	Field string `json:"field"`

	// Msg is a human-readable reason, e.g. "title appears to be
	// unencrypted plain text".
	Msg string `json:"msg"`
}
