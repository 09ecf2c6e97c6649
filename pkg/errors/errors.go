package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so the HTTP boundary can map it to a status
// code without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	default:
		return "internal"
	}
}

// AppError carries an error kind alongside the message. The kind travels
// with the value through wrapping, so callers use KindOf rather than
// matching on strings.
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the given kind
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error
func Wrap(kind Kind, err error, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Validationf creates a validation error (client-supplied input is malformed)
func Validationf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found error (well-formed lookup, no matching entity)
func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Storef wraps a record store failure
func Storef(err error, format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindStore, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind carried by err, or KindInternal for plain errors
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error kind to its HTTP status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
