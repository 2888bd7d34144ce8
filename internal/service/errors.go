package service

import "errors"

var (
	// ErrAuthFailed is returned by Login when the email matches no stored
	// user or the password does not match. The two cases are deliberately
	// indistinguishable so that callers cannot probe which emails are
	// registered.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrTokenCreationFailed wraps operational failures during JWT signing.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// so callers need not inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
