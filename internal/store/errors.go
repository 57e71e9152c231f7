package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set, or when a profile write refers to
	// a user that no longer exists.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when the requested user has not created
	// a profile yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrImageStorageDisabled is returned by the no-op image storage.
	ErrImageStorageDisabled = errors.New("image storage is disabled")
)

// Low-level errors wrapped together with the driver error so that callers can
// tell the failing step apart in logs.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a statement.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUploadingImage is returned when the object storage rejects an upload.
	ErrUploadingImage = errors.New("failed to upload image")
)
