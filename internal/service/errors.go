package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is rejected before
	// any store access because required fields are missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any authentication failure.
	// A missing user and a wrong password produce this same value so the
	// response never reveals which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned when a presented session token
	// fails validation for any reason (expired, wrong issuer, malformed).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
