package service

import "errors"

// ErrNotFound is the single outward signal for "does not exist" and
// "exists but belongs to someone else". Collapsing the two keeps resource
// ids unenumerable by non-owners.
var ErrNotFound = errors.New("resource not found")

// ValidationError carries a machine-stable code alongside the human-readable
// message, so clients can branch on the code while displaying the message.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
