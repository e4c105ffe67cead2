package domain

import "errors"

// Sentinel errors shared across layers. Callers classify with errors.Is;
// messages carry the detail via fmt.Errorf wrapping.
var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers missing or malformed required fields, enum
	// violations, and empty required sequences.
	ErrValidation = errors.New("validation failed")

	// ErrNormalization covers unparseable dates and malformed times.
	ErrNormalization = errors.New("normalization failed")

	// ErrEventNotFound is returned when a booking references an event
	// that does not exist at write time.
	ErrEventNotFound = errors.New("referenced event does not exist")

	// ErrDuplicateSlug is returned when the storage-level unique index
	// rejects a slug that is already in use.
	ErrDuplicateSlug = errors.New("slug already in use")

	// ErrConnection is returned when the document store is unreachable
	// or a connect attempt fails.
	ErrConnection = errors.New("document store connection failed")
)
