package store

// ErrorClassification is the result type returned by [ErrorClassifier.Classify].
// It tells repositories how to translate a failed database operation into the
// store's error taxonomy.
type ErrorClassification int

const (
	// NonRetryable indicates an infrastructure fault that will not succeed
	// if attempted again. This is the default classification for
	// unrecognised errors, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	// The store performs no retries itself; the classification is surfaced
	// for callers and diagnostics.
	Retryable

	// UniqueViolation indicates that a uniqueness constraint rejected the
	// write. Repositories map it to [ErrUsernameAlreadyExists] so callers
	// can tell bad input apart from infrastructure failure.
	UniqueViolation
)

// ErrorClassifier normalises driver-level errors into an
// [ErrorClassification]. Each backend ships its own implementation.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
