package service

import "errors"

// Common service-level errors. Handlers map these to HTTP status codes;
// the service never touches HTTP itself.
var (
	// ErrInvalidInput is returned when a request field fails validation
	// (empty title, status outside the allowed set, ...). Usually wrapped
	// with a more specific message.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when an authenticated identity is not
	// permitted to act on the referenced task.
	ErrForbidden = errors.New("not authorized")
)
