package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a missing or empty required field, or malformed amount text.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnresolvedPair indicates that the cross-reference matrix has no entry for a currency pair.
var ErrUnresolvedPair = errors.New("unresolved currency pair")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that configuration or table data failed validation checks.
var ErrValidation = errors.New("validation error")

// SystemApplication tags errors raised by this application.
const SystemApplication = "APPLICATION"

// Messages surfaced to callers.
const (
	MsgInvalidInput   = "Input field provided is not valid"
	MsgUnresolvedPair = "Currency details are not found in currency matrix table"
	MsgGeneric        = "A generic exception occurred"
)

// CurrencyError carries a short message for the user, a detailed diagnostic and
// the originating system. Kind is one of the sentinel errors above and is what
// errors.Is matches against.
type CurrencyError struct {
	Message string
	Detail  string
	System  string
	Kind    error
	cause   error
}

func (e *CurrencyError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Unwrap exposes both the kind and the wrapped cause.
func (e *CurrencyError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// NewInvalidInputError builds an ErrInvalidInput failure with a diagnostic.
func NewInvalidInputError(format string, args ...any) *CurrencyError {
	return &CurrencyError{
		Message: MsgInvalidInput,
		Detail:  fmt.Sprintf(format, args...),
		System:  SystemApplication,
		Kind:    ErrInvalidInput,
	}
}

// NewUnresolvedPairError builds an ErrUnresolvedPair failure for the given pair.
func NewUnresolvedPairError(source, destination string) *CurrencyError {
	return &CurrencyError{
		Message: MsgUnresolvedPair,
		Detail:  fmt.Sprintf("no cross matrix entry for %s%s", source, destination),
		System:  SystemApplication,
		Kind:    ErrUnresolvedPair,
	}
}

// NewNotFoundError builds an ErrNotFound failure.
func NewNotFoundError(detail string) *CurrencyError {
	return &CurrencyError{
		Message: "Resource not found",
		Detail:  detail,
		System:  SystemApplication,
		Kind:    ErrNotFound,
	}
}

// Wrap turns an unexpected lower-level failure into a CurrencyError with the
// generic message, keeping the original diagnostic. CurrencyErrors pass through.
func Wrap(err error) *CurrencyError {
	if err == nil {
		return nil
	}
	var ce *CurrencyError
	if errors.As(err, &ce) {
		return ce
	}
	return &CurrencyError{
		Message: MsgGeneric,
		Detail:  err.Error(),
		System:  SystemApplication,
		cause:   err,
	}
}

// UserMessage returns the short message of a CurrencyError, or the error text otherwise.
func UserMessage(err error) string {
	var ce *CurrencyError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
