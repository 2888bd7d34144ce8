package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by ID or email matches no
	// stored user. Absence is a normal outcome, not a fault.
	ErrUserNotFound = errors.New("no user was found")
)
