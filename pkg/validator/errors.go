package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by Errors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvertedBounds is wrapped by the BoundsError a check panics with when min > max.
	ErrInvertedBounds = errors.New("minimum is greater than maximum")

	// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrUnknownCategory is returned by ParseCategory for an unrecognised tag.
	ErrUnknownCategory = errors.New("unknown error category")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse validator config")

	// ErrInvalidRequest is returned when the request body cannot be parsed into form values.
	ErrInvalidRequest = errors.New("invalid request body")
)

// BoundsError reports a check invoked with min > max. It is a caller bug, not
// bad input, so checks panic with it instead of returning false.
type BoundsError struct {
	Check string
	Field string
	Min   any
	Max   any
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("validator: %s check on %q: minimum %v is greater than maximum %v", e.Check, e.Field, e.Min, e.Max)
}

func (e *BoundsError) Unwrap() error {
	return ErrInvertedBounds
}

// IsValidationError reports whether err carries an Errors collection.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs Errors
	return errors.As(err, &verrs)
}

// ExtractErrors extracts the Errors collection from err.
// The second return value is false when err does not wrap one.
func ExtractErrors(err error) (Errors, bool) {
	if err == nil {
		return Errors{}, false
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}

	return Errors{}, false
}
