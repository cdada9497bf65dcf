package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// Client-side sentinels. They describe session state and access problems
// surfaced by the client services, not server-side failures.
var (
	// ErrNotAuthenticated is returned when an operation requires a logged-in
	// session but no bearer token is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionLocked is returned when an operation needs key material but
	// the encryption password has not been verified yet.
	ErrSessionLocked = errors.New("session is locked")

	// ErrUnauthorizedAccess is returned when the server rejects access to a
	// resource owned by a different user.
	ErrUnauthorizedAccess = errors.New("unauthorized access to different user data")
)
