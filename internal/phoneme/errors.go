package phoneme

import (
	"errors"
	"fmt"
)

// Validation error codes (E100-E199)
const (
	ErrSymbolEmpty     = "E101" // symbol must be non-empty
	ErrInvalidHeight   = "E102" // height outside the closed set
	ErrInvalidBackness = "E103" // backness outside the closed set
	ErrInvalidRounding = "E104" // rounding outside the closed set
	ErrDuplicateSymbol = "E105" // two catalog entries share a symbol
	ErrWrongCount      = "E106" // catalog cardinality mismatch
	ErrMisplacedAny    = "E107" // rounding=any anywhere but the mid central schwa
)

// ValidationError represents a construction or catalog-integrity failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// newValidationError builds a *ValidationError with a formatted message.
func newValidationError(code, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Code:    code,
	}
}

// ErrorCode extracts the validation code from an error, unwrapping as
// needed. Returns "" if the error is not a *ValidationError.
func ErrorCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
