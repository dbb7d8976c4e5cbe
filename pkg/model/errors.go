package model

import "fmt"

type errorString string

func (e errorString) Error() string {
	return string(e)
}

const (
	// ErrFieldNotFound is returned when a record does not hold the requested field
	ErrFieldNotFound errorString = "field not found"

	// ErrFieldNil is returned when a field is present but holds no value
	ErrFieldNil errorString = "field is nil"

	// ErrFieldType is returned when a field value cannot be converted to the expected type
	ErrFieldType errorString = "field has unexpected type"

	// ErrFieldRange is returned when a field value does not fit the expected numeric type
	ErrFieldRange errorString = "field value out of range"
)

// FieldError describes a failed field extraction on a record
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap the cause of the extraction failure
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Cause supports github.com/pkg/errors.Cause
func (e *FieldError) Cause() error {
	return e.Err
}

func fieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}
