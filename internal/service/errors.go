package service

import "errors"

// Sentinel errors shared by all services. Controllers map these onto HTTP
// status codes; anything else is treated as an internal fault.
var (
	// ErrValidation marks input rejected before touching the store.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks a lookup for a row that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write that collides with an existing unique name.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized marks failed credential or token checks.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrQueryFailed wraps store faults surfaced by the query pipeline.
	ErrQueryFailed = errors.New("query failed")
)
