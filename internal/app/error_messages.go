// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// notevault server handlers and the client-side error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed is the envelope message of a field-level
	// validation failure response. Per-field details travel in the
	// "errors" array alongside it.
	MsgValidationFailed = "Validation failed"

	// MsgInvalidUsernamePassword is returned when the supplied
	// username/password combination does not match any existing user.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify a resource that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEncryptionKeysAlreadySet is returned when encryption setup is
	// attempted on an account that already completed it. Keys are set
	// exactly once; later changes go through the update endpoint.
	MsgEncryptionKeysAlreadySet = "encryption keys already set"

	// MsgEncryptionKeysNotSet is returned when key retrieval or key update
	// is attempted before encryption setup was completed.
	MsgEncryptionKeysNotSet = "encryption keys are not set"

	// MsgNoteNotFound is returned when a read, update, or delete operation
	// targets a note that does not exist for the current user.
	MsgNoteNotFound = "note not found"

	// MsgCategoryNotFound is returned when a read, update, or delete
	// operation targets a category that does not exist for the current
	// user.
	MsgCategoryNotFound = "category not found"

	// MsgNoFieldsToUpdate is returned when a partial update request
	// carries no updatable fields at all.
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 request
	// header does not match the HMAC digest of the received body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgVersionIsNotSpecified is returned by the version endpoint when
	// the build version was not configured at startup.
	MsgVersionIsNotSpecified = "version is not specified"
)
