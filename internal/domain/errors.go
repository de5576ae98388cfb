package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Course generation specific errors
	CodeUnitNotFound       ErrorCode = "UNIT_NOT_FOUND"
	CodeChapterNotFound    ErrorCode = "CHAPTER_NOT_FOUND"
	CodeQuizResultNotFound ErrorCode = "QUIZ_RESULT_NOT_FOUND"
	CodeProviderError      ErrorCode = "PROVIDER_ERROR"
	CodeConsistencyError   ErrorCode = "CONSISTENCY_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewUnitNotFoundError(unitID string) *DomainError {
	return NewError(CodeUnitNotFound, fmt.Sprintf("Unit not found with ID: %s", unitID), nil)
}

func NewChapterNotFoundError(name string) *DomainError {
	return NewError(CodeChapterNotFound, fmt.Sprintf("Chapter not found: %s", name), nil)
}

func NewQuizResultNotFoundError(unitID string) *DomainError {
	return NewError(CodeQuizResultNotFound, fmt.Sprintf("No quiz results found for unit: %s", unitID), nil)
}

func NewProviderError(message string, cause error) *DomainError {
	return NewError(CodeProviderError, message, cause)
}

// NewConsistencyError flags a failed delete-and-recreate phase. The unit's
// chapter set must be treated as undefined until remediated.
func NewConsistencyError(unitID string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeConsistencyError,
		Message: fmt.Sprintf("Chapter replacement for unit %s did not complete atomically", unitID),
		Cause:   cause,
		Context: map[string]interface{}{"unit_id": unitID},
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == code
	}
	return false
}
