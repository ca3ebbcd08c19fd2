// file: internals/apperr/apperr.go
package apperr

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies store/service failures so controllers can map them to HTTP
// without string matching. Everything that is not one of the typed kinds is
// Internal and means the triggering transaction was rolled back.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindIntegrity
	KindAuth
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) *Error { return New(KindValidation, msg) }
func Conflict(msg string) *Error   { return New(KindConflict, msg) }
func NotFound(msg string) *Error   { return New(KindNotFound, msg) }
func Integrity(msg string) *Error  { return New(KindIntegrity, msg) }
func Auth(msg string) *Error       { return New(KindAuth, msg) }
func Internal(err error) *Error    { return Wrap(KindInternal, "internal error", err) }

// KindOf extracts the kind from an error chain; plain errors are Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool { return err != nil && KindOf(err) == kind }

// HTTPStatus maps the taxonomy onto the statuses the response envelope uses.
// Integrity violations surface as 422 so clients can tell them apart from
// uniqueness conflicts (409).
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindNotFound:
		return fiber.StatusNotFound
	case KindIntegrity:
		return fiber.StatusUnprocessableEntity
	case KindAuth:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

/* =========================
   SQL error classification
   ========================= */

// IsUniqueViolation: Postgres SQLSTATE 23505 or the SQLite wording.
// Substring check keeps the stores portable across both drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

// IsFKViolation: Postgres SQLSTATE 23503 or the SQLite wording.
func IsFKViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23503") ||
		strings.Contains(s, "foreign key")
}
