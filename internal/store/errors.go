package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists in the
	// database. The failed attempt leaves no state behind.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned by user lookups that match no record.
	// Absence of a user is an expected outcome for the lookup itself; it is
	// the caller that decides whether it constitutes a failure.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoreUnavailable wraps any infrastructure-level database fault
	// (connection loss, I/O error, corruption). Repositories never retry;
	// the error propagates immediately to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
