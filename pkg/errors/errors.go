package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed application error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the failure modes of the dashboard.
var (
	ErrAuthInvalid    = New("AUTH_INVALID", http.StatusUnauthorized, "usuário ou senha inválidos")
	ErrRequestFailed  = New("REQUEST_FAILED", http.StatusBadGateway, "o backend recusou a operação")
	ErrTransport      = New("TRANSPORT_ERROR", http.StatusBadGateway, "erro de conexão com o backend")
	ErrEmptySelection = New("EMPTY_SELECTION", http.StatusBadRequest, "selecione um curso")
	ErrValidation     = New("VALIDATION_ERROR", http.StatusBadRequest, "dados inválidos")
	ErrInternal       = New("INTERNAL_ERROR", http.StatusInternalServerError, "erro interno")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err carries the given predefined error's code.
func Is(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code == target.Code
	}
	return false
}
