package serverutils

import "errors"

// Request error taxonomy. Services wrap these so each surface can decide
// how to present them: the API maps them to status codes in
// ErrorHandlerMiddleware, the web controllers map them to flash+redirect.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)

type statusError struct {
	kind error
	msg  string
}

func (e *statusError) Error() string { return e.msg }

func (e *statusError) Unwrap() error { return e.kind }

func ValidationError(msg string) error {
	return &statusError{kind: ErrValidation, msg: msg}
}

func UnauthenticatedError(msg string) error {
	return &statusError{kind: ErrUnauthenticated, msg: msg}
}

func ForbiddenError(msg string) error {
	return &statusError{kind: ErrForbidden, msg: msg}
}

func NotFoundError(msg string) error {
	return &statusError{kind: ErrNotFound, msg: msg}
}
