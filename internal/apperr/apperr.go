package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can pick a status code and the
// saga layer can decide between reflecting and reclassifying remote errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	// KindRemoteUnavailable: the collaborator is down (circuit open, network
	// failure, unexpected 5xx). Safe to retry later.
	KindRemoteUnavailable
	// KindRemoteRejected: the collaborator returned a structured field
	// validation error. Treated like a local validation failure.
	KindRemoteRejected
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindRemoteUnavailable:
		return "remote_unavailable"
	case KindRemoteRejected:
		return "remote_rejected"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Fields maps field name to a human-readable message for validation
	// failures, local or remote.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "invalid request body", Fields: fields}
}

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

func Forbidden(message string) *Error { return New(KindForbidden, message) }

func RemoteUnavailable(message string, err error) *Error {
	return Wrap(KindRemoteUnavailable, message, err)
}

func RemoteRejected(message string, fields map[string]string) *Error {
	return &Error{Kind: KindRemoteRejected, Message: message, Fields: fields}
}

func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

// KindOf returns the classification of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// FieldsOf returns the field->message map of err, nil if none.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// MessageOf returns the user-facing message of err, falling back to a generic
// one for unclassified errors so internals never leak to callers.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
