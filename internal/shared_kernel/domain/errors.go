package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUniqueConstraint = errors.New("unique constraint violated")
	ErrRequiredField    = errors.New("required field missing")
	ErrTypeCoercion     = errors.New("type coercion failed")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
)

// UniqueConstraintError reports a value already held by another record for a unique field.
type UniqueConstraintError struct {
	Field string
	Value string
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("value '%s' for field '%s' already exists", e.Value, e.Field)
}

func (e *UniqueConstraintError) Unwrap() error {
	return ErrUniqueConstraint
}

type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("field '%s' is required", e.Field)
}

func (e *RequiredFieldError) Unwrap() error {
	return ErrRequiredField
}

type TypeCoercionError struct {
	Field     string
	FieldType string
	Value     string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("value '%s' for field '%s' is not a valid %s", e.Value, e.Field, e.FieldType)
}

func (e *TypeCoercionError) Unwrap() error {
	return ErrTypeCoercion
}
