// Package httperr defines the outward error taxonomy and maps it onto HTTP
// responses. Store and internal failures are logged with detail server-side;
// clients only ever see the generic message for their category.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"printcare/internal/logger"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidCredentials
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindBadRequest
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) error { return &Error{Kind: kind, Msg: msg} }

// Sentinels with the default outward message for each category.
var (
	ErrInvalidCredentials = New(KindInvalidCredentials, "invalid username or password")
	ErrUnauthenticated    = New(KindUnauthenticated, "authentication required")
	ErrForbidden          = New(KindForbidden, "forbidden")
	ErrNotFound           = New(KindNotFound, "not found")
	ErrConflict           = New(KindConflict, "already exists")
	ErrInternal           = New(KindInternal, "internal server error")
)

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func statusOf(kind Kind) int {
	switch kind {
	case KindInvalidCredentials, KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the JSON error response for err. Internal faults are never
// echoed to the caller: the detail goes to the log, the client gets a
// generic message.
func Respond(c *gin.Context, err error) {
	kind := KindOf(err)
	msg := err.Error()
	if kind == KindInternal {
		log := logger.Get()
		log.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("internal error")
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(statusOf(kind), gin.H{"error": msg})
}

// Internal wraps a store or unexpected fault so Respond logs it but hides
// the detail from the caller.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInternal, Msg: err.Error()}
}

// BadRequest builds a caller-visible validation error.
func BadRequest(msg string) error { return New(KindBadRequest, msg) }

// Conflict builds a caller-visible uniqueness error.
func Conflict(msg string) error { return New(KindConflict, msg) }
