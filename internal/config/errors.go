package config

import "errors"

// Sentinel errors returned by config validation. Callers can match against
// them with [errors.Is].
var (
	// ErrNoTokenSignKey is returned when no token signing key was supplied
	// by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidTokenDuration is returned when the merged token duration is
	// zero or negative.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")

	// ErrNoServerAddress is returned when the merged HTTP listen address is
	// empty.
	ErrNoServerAddress = errors.New("server address is required")
)
