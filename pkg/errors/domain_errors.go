package errors

import (
	"fmt"
	"strings"
)

// DomainErrorType represents the category of domain error
type DomainErrorType string

const (
	// DomainValidationError indicates input validation failure
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainBusinessRuleError indicates a business rule violation
	DomainBusinessRuleError DomainErrorType = "BUSINESS_RULE_ERROR"

	// DomainNotFoundError indicates a resource was not found
	DomainNotFoundError DomainErrorType = "NOT_FOUND"

	// DomainConflictError indicates a conflict with existing state
	DomainConflictError DomainErrorType = "CONFLICT"
)

// DomainError represents a domain-specific error with rich context
type DomainError struct {
	Type    DomainErrorType        `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// WithCause returns a copy of the error with the cause attached. Copying
// keeps the package-level sentinel errors immutable.
func (e *DomainError) WithCause(cause error) *DomainError {
	derived := e.clone()
	derived.Cause = cause
	return derived
}

// WithDetail returns a copy of the error with the detail attached
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	derived := e.clone()
	derived.Details[key] = value
	return derived
}

func (e *DomainError) clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &DomainError{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Is checks if the error is of a specific type
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Common domain errors - these are pre-defined errors that can be reused

var (
	// Concept errors
	ErrConceptNotFound = NewDomainError(
		DomainNotFoundError,
		"CONCEPT_NOT_FOUND",
		"The requested concept is not registered",
	)

	ErrConceptIDRequired = NewDomainError(
		DomainValidationError,
		"CONCEPT_ID_REQUIRED",
		"Concept id is required",
	)

	ErrInvalidConceptID = NewDomainError(
		DomainValidationError,
		"INVALID_CONCEPT_ID",
		"Concept id must be a lowercase hyphenated token",
	)

	// Curriculum errors
	ErrCurriculumFrozen = NewDomainError(
		DomainConflictError,
		"CURRICULUM_FROZEN",
		"The curriculum is frozen; rebuild and republish to change it",
	)

	ErrCurriculumNotFrozen = NewDomainError(
		DomainBusinessRuleError,
		"CURRICULUM_NOT_FROZEN",
		"The curriculum must be frozen before it can be queried",
	)

	ErrDanglingPrerequisite = NewDomainError(
		DomainValidationError,
		"DANGLING_PREREQUISITE",
		"A declared prerequisite does not resolve to a registered concept",
	)

	ErrCyclicDependency = NewDomainError(
		DomainBusinessRuleError,
		"CYCLIC_DEPENDENCY",
		"The prerequisite graph contains a cycle",
	)
)

// ValidationErrors aggregates multiple validation errors
type ValidationErrors struct {
	Errors []*DomainError `json:"errors"`
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]*DomainError, 0),
	}
}

// Add adds a validation error
func (v *ValidationErrors) Add(field string, message string) {
	err := NewDomainError(DomainValidationError, "FIELD_VALIDATION_ERROR", message).
		WithDetail("field", field)
	v.Errors = append(v.Errors, err)
}

// AddError adds a pre-existing domain error
func (v *ValidationErrors) AddError(err *DomainError) {
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if there are validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, "; "))
}

// ToMap converts validation errors to a map for JSON serialization
func (v *ValidationErrors) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, err := range v.Errors {
		field, ok := err.Details["field"].(string)
		if !ok {
			field = "general"
		}

		result[field] = append(result[field], err.Message)
	}

	return result
}
