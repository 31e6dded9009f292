package callable

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a callable failure. Every error a procedure surfaces to the
// caller carries exactly one of these.
type Kind string

const (
	KindUnauthenticated  Kind = "UNAUTHENTICATED"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindInvalidAsset     Kind = "INVALID_ASSET"
	KindAlreadyExists    Kind = "ALREADY_EXISTS"
	KindNotFound         Kind = "NOT_FOUND"
	KindInternal         Kind = "INTERNAL"
)

// Error is the structured failure returned by callable procedures. Message is
// the caller-visible text; Err, when set, is the underlying collaborator
// failure and never leaves the server.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticated(message string) *Error  { return NewError(KindUnauthenticated, message) }
func PermissionDenied(message string) *Error { return NewError(KindPermissionDenied, message) }
func InvalidArgument(message string) *Error  { return NewError(KindInvalidArgument, message) }
func InvalidAsset(message string) *Error     { return NewError(KindInvalidAsset, message) }
func AlreadyExists(message string) *Error    { return NewError(KindAlreadyExists, message) }
func NotFound(message string) *Error         { return NewError(KindNotFound, message) }

// Internal wraps a collaborator failure. The caller-visible message is fixed;
// the cause stays on the error for the handler's log line.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the Kind from err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

// ToHTTPStatus maps a callable error to its HTTP status.
func ToHTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidArgument, KindInvalidAsset:
		return http.StatusBadRequest
	case KindAlreadyExists:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
