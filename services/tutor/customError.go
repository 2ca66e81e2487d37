package tutor

import "errors"

// Sentinel errors surfaced to handlers so they can pick status codes
// without string matching.
var (
	ErrEmailTaken         = errors.New("a tutor with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTutorNotFound      = errors.New("tutor not found")
)
