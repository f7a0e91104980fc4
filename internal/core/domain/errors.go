package domain

import "errors"

// Domain errors represent failures of the local candidate sources.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a candidate source does not exist
	// (missing bookmarks file, missing ssh config, no profiles).
	ErrNotFound = errors.New("not found")

	// ErrCorrupted indicates a candidate source exists but cannot be parsed.
	ErrCorrupted = errors.New("corrupted")
)
