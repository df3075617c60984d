// Package domainerrors provides code-tagged errors for the service layer.
//
// Stores return sentinel errors (pkg/platform/sentinel) describing storage
// facts; services translate those into coded domain errors that handlers can
// map onto HTTP statuses without string matching.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeBadRequest marks malformed or semantically wrong caller input
	// (missing email, wrong profile type for an invitation, ...).
	CodeBadRequest Code = "bad_request"

	// CodeConflict marks a valid request blocked by current state
	// (duplicate active invitation, already-claimed invitation, ...).
	CodeConflict Code = "conflict"

	// CodeNotFound marks a missing entity, or one deliberately treated as
	// missing for information hiding.
	CodeNotFound Code = "not_found"

	// CodeForbidden marks a caller category that is disallowed outright.
	CodeForbidden Code = "forbidden"

	// CodeUnauthorized marks a missing or unusable caller identity.
	CodeUnauthorized Code = "unauthorized"

	// CodeInvariantViolation marks a broken model invariant surfaced by a
	// constructor or state-transition check.
	CodeInvariantViolation Code = "invariant_violation"

	// CodeTimeout marks work abandoned because its deadline passed or the
	// caller went away.
	CodeTimeout Code = "timeout"

	// CodeInternal marks an invariant the workflow relies on being violated
	// by a collaborator (e.g. a just-saved row cannot be re-fetched).
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Construct via New or Wrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a coded error with a caller-facing message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted caller-facing message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is/As inspection.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in the domain layer.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code onto its transport status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
