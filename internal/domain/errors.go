package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. budget outside the allowed range).
// Handlers should map this to HTTP 400 with field-level detail.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when a request carries no valid identity
// (missing, expired, or tampered token; wrong credentials on login).
// Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrForbidden is returned when an authenticated user acts on a record
// owned by someone else. Handlers should map this to HTTP 403.
// The target record is never modified when this error is returned.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a create would violate a uniqueness rule
// (currently only a duplicate username on registration).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
