package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP edge.
// Messages collects the user-facing (localized) messages rendered in the
// response body; Err keeps the underlying cause for logging.
type AppError struct {
	Code     ErrorCode
	Domain   string
	Messages []string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %v (%v)", e.Domain, e.Code, e.Messages, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %v", e.Domain, e.Code, e.Messages)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with a single message.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Messages: []string{message},
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	e := New(code, domain, message, httpCode)
	e.Err = err
	return e
}

// WithMessages replaces the message list, e.g. with aggregated validation
// failures collected across several offer tiers.
func (e *AppError) WithMessages(messages []string) *AppError {
	e.Messages = messages
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Is and As re-export the stdlib helpers so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- generic constructors ---

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Interner Serverfehler.", http.StatusInternalServerError)
}

// ValidationError aggregates one or more field messages into a 400.
func ValidationError(messages ...string) *AppError {
	return &AppError{
		Code:     CodeValidationFailed,
		Domain:   "validation",
		Messages: messages,
		HTTPCode: http.StatusBadRequest,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, "resource", message, http.StatusNotFound)
}

// NewDuplicateError reports a uniqueness conflict. Surfaced as 400 rather
// than 409 to keep the review endpoint response codes stable for clients.
func NewDuplicateError(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusBadRequest)
}
