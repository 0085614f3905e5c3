package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	HttpInternalError        = "internal_error"
	HttpInvalidRequestError  = "invalid_request"
	HttpInvalidQueryError    = "invalid_query"
	HttpUploadTooLargeError  = "upload_too_large"
	HttpMissingUploadError   = "missing_upload"
	HttpProcessNotFoundError = "process_not_found"
)

// ErrorResponse is the error response body for every HTTP endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// Kind is the closed set of failure categories the ingestion core can report.
type Kind int

const (
	KindParse Kind = iota + 1
	KindPersistence
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindPersistence:
		return "persistence"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the single error type for the taxonomy. Message is what ends up on
// the notification channel; Err keeps the underlying cause for logs and errors.Is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so callers can test against the
// ErrParse / ErrPersistence / ErrValidation markers.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Kind markers for errors.Is.
var (
	ErrParse       = &Error{Kind: KindParse}
	ErrPersistence = &Error{Kind: KindPersistence}
	ErrValidation  = &Error{Kind: KindValidation}
)

// Parse builds a parse failure for a malformed input record.
func Parse(format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// Persistence builds a store failure wrapping cause.
func Persistence(cause error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Error{Kind: KindPersistence, Message: msg, Err: cause}
}

// Validation builds a failure for caller-supplied parameters.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the taxonomy kind of err, or 0 if err is not part of it.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
