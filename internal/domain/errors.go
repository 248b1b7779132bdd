package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// person does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrNotCreated is matched by every *NotCreatedError.
// Handlers should map this to HTTP 400 Bad Request.
var ErrNotCreated = errors.New("not created")

// NotCreatedError is returned by the service when a person fails validation
// and was therefore never persisted. Message is the aggregated, client-facing
// description of every violated field.
type NotCreatedError struct {
	Message string
}

func (e *NotCreatedError) Error() string {
	return "not created: " + e.Message
}

// Is reports whether target is ErrNotCreated, so callers can use
// errors.Is(err, domain.ErrNotCreated) without caring about the message.
func (e *NotCreatedError) Is(target error) bool {
	return target == ErrNotCreated
}
