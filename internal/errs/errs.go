// Package errs defines the failure taxonomy shared by all order
// operations. Every failure carries a machine-readable code, a
// human-readable details string and optionally the offending field key.
package errs

import (
	"fmt"
	"strings"
)

const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeBusinessRule    = "business_rule_violation"
	CodeServerError     = "server_error"
)

// NotFoundError is raised when a catalog item or an order is absent.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", capitalize(e.ResourceType), e.ResourceID)
}

func (e *NotFoundError) Code() string { return CodeNotFound }

// ValidationError is raised for malformed input shapes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Code() string { return CodeValidationError }

// BusinessRuleViolation is raised when a well-formed request breaks an
// order business rule (terminal status mutation, ownership, pricing
// policy rejection).
type BusinessRuleViolation struct {
	Details string
}

func (e *BusinessRuleViolation) Error() string { return e.Details }

func (e *BusinessRuleViolation) Code() string { return CodeBusinessRule }

// UnexpectedError wraps any failure outside the taxonomy, typically a
// repository or broker failure.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return e.Err.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Err }

func (e *UnexpectedError) Code() string { return CodeServerError }

// NotFound builds a NotFoundError for the given resource.
func NotFound(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
}

// Validation builds a ValidationError for the given field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// BusinessRule builds a BusinessRuleViolation with the given details.
func BusinessRule(format string, args ...interface{}) *BusinessRuleViolation {
	return &BusinessRuleViolation{Details: fmt.Sprintf(format, args...)}
}

// Unexpected wraps err as an UnexpectedError.
func Unexpected(err error) *UnexpectedError {
	return &UnexpectedError{Err: err}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
