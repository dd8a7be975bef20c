package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// causeError reports a fixed message while keeping the underlying cause
// reachable through errors.Is/As.
type causeError struct {
	kind  error
	cause error
}

// WithCause returns an error whose message is kind's message and which
// matches both kind and cause.
func WithCause(kind, cause error) error {
	return &causeError{kind: kind, cause: cause}
}

func (e *causeError) Error() string {
	return e.kind.Error()
}

func (e *causeError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
