package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so the transport can map it to a status code
type Kind int

// Error kinds surfaced by the repository and services
const (
	Internal Kind = iota
	InvalidIDFormat
	BadRequest
	Validation
	NotFound
	Conflict
	AppendFailed
	UpdateFailed
	StoreUnavailable
)

var kindNames = map[Kind]string{
	Internal:         "internal",
	InvalidIDFormat:  "invalid id format",
	BadRequest:       "bad request",
	Validation:       "validation",
	NotFound:         "not found",
	Conflict:         "conflict",
	AppendFailed:     "append failed",
	UpdateFailed:     "update failed",
	StoreUnavailable: "store unavailable",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// HTTPStatus returns the status code a handler responds with for the kind
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidIDFormat, BadRequest:
		return http.StatusBadRequest
	case Validation:
		return http.StatusUnprocessableEntity
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case StoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a kind, a human readable message and the underlying cause
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an error of the given kind without a cause
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with a format string
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to err. A nil err yields nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or Internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err is classified as kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the detail message of err for client responses
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// Cause returns the text of the underlying cause, or the kind name when there is none
func Cause(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
