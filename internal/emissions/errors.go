package emissions

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compared with errors.Is.
var (
	// ErrInvalidSector indicates the sector is unset or not recognised.
	ErrInvalidSector = constError("invalid sector")

	// ErrMissingField indicates a field required by the chosen sector is
	// absent or does not hold a usable number.
	ErrMissingField = constError("missing or invalid field")

	// ErrUnknownFactor indicates a subtype with no emission factor.
	ErrUnknownFactor = constError("unknown emission factor")
)

// Reasons reported by FieldError.
const (
	ReasonMissing     = "is required"
	ReasonNotANumber  = "is not a number"
	ReasonNegative    = "must not be negative"
	ReasonNotWhole    = "must be a whole number"
	ReasonUnknownType = "has no emission factor"
)

// FieldError describes a problem with a single input field.
type FieldError struct {
	Field  string
	Value  string
	Reason string
	err    error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s (got %q)", e.Field, e.Reason, e.Value)
}

// Unwrap returns ErrMissingField or ErrUnknownFactor.
func (e *FieldError) Unwrap() error { return e.err }

func missingField(field string) *FieldError {
	return &FieldError{Field: field, Reason: ReasonMissing, err: ErrMissingField}
}

func invalidField(field, value, reason string) *FieldError {
	return &FieldError{Field: field, Value: value, Reason: reason, err: ErrMissingField}
}

func unknownFactor(field, value string) *FieldError {
	return &FieldError{Field: field, Value: value, Reason: ReasonUnknownType, err: ErrUnknownFactor}
}
