package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrKeysAlreadySet is returned when encryption setup targets a user who
	// already has a key pair stored. Setup is one-shot; rotation goes through
	// the dedicated update path.
	ErrKeysAlreadySet = errors.New("encryption keys already set")

	// ErrKeysNotSet is returned when a key lookup targets a user who has not
	// completed encryption setup yet.
	ErrKeysNotSet = errors.New("encryption keys not set")

	// ErrNoteNotFound is returned when a query or update targets a note
	// (identified by id and user_id) that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrCategoryNotFound is returned when a query or update targets a
	// category that does not exist for the given user.
	ErrCategoryNotFound = errors.New("category was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no SET clauses in a dynamic update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
