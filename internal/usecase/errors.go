package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Business-rule errors are terminal for a single operation and returned to
// the caller unchanged. DependencyError is the only infrastructure kind.

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

type AlreadyMemberError struct {
	ContactID string
}

func (e *AlreadyMemberError) Error() string {
	return fmt.Sprintf("contact %s is already a member", e.ContactID)
}

type DuplicateRecordError struct {
	Kind      string
	ContactID string
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("a %s record already exists for contact %s", e.Kind, e.ContactID)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// DependencyError wraps a failed call to the primary store or another
// infrastructure collaborator.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAlreadyMember(err error) bool {
	var target *AlreadyMemberError
	return errors.As(err, &target)
}

func IsDuplicateRecord(err error) bool {
	var target *DuplicateRecordError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsDependency(err error) bool {
	var target *DependencyError
	return errors.As(err, &target)
}
