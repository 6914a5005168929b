// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// UnknownOperationError indicates an operation name has no descriptor.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %q", e.Operation)
}

// NewUnknownOperationError creates a new unknown operation error.
func NewUnknownOperationError(operation string) *UnknownOperationError {
	return &UnknownOperationError{Operation: operation}
}

// MissingFieldError indicates a required config key was absent.
type MissingFieldError struct {
	Operation string
	Field     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Operation, e.Field)
}

// NewMissingFieldError creates a new missing field error.
func NewMissingFieldError(operation, field string) *MissingFieldError {
	return &MissingFieldError{Operation: operation, Field: field}
}

// TypeMismatchError indicates a config value had the wrong shape.
type TypeMismatchError struct {
	Cause     error
	Operation string
	Field     string
	Expected  string
	Actual    string
}

func (e *TypeMismatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: field %q: expected %s, got %s: %v", e.Operation, e.Field, e.Expected, e.Actual, e.Cause)
	}
	return fmt.Sprintf("%s: field %q: expected %s, got %s", e.Operation, e.Field, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Cause
}

// NewTypeMismatchError creates a new type mismatch error.
func NewTypeMismatchError(operation, field, expected, actual string) *TypeMismatchError {
	return &TypeMismatchError{
		Operation: operation,
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}

// EncodingError indicates a bound request could not be converted into the
// remote call's input shape, e.g. a nested value of the wrong type.
type EncodingError struct {
	Cause     error
	Operation string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: cannot encode request: %v", e.Operation, e.Cause)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// NewEncodingError creates a new encoding error.
func NewEncodingError(operation string, cause error) *EncodingError {
	return &EncodingError{Operation: operation, Cause: cause}
}

// InvocationError indicates the remote service returned an error response.
type InvocationError struct {
	Cause      error
	Operation  string
	Code       string
	Message    string
	RequestID  string
	StatusCode int
}

func (e *InvocationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// NewInvocationError creates a new invocation error.
func NewInvocationError(operation, code, message string, cause error) *InvocationError {
	return &InvocationError{
		Operation: operation,
		Code:      code,
		Message:   message,
		Cause:     cause,
	}
}

// TransportError indicates no remote response was obtained.
type TransportError struct {
	Cause     error
	Operation string
	Message   string
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: transport failure: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: transport failure: %s", e.Operation, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a new transport error.
func NewTransportError(operation, message string, cause error) *TransportError {
	return &TransportError{
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError indicates catalog or document validation failed.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// KindOf maps an error onto the invocation error taxonomy. Errors outside the
// taxonomy are treated as transport failures: no remote response was
// obtained for them.
func KindOf(err error) values.ErrorKind {
	var (
		unknown   *UnknownOperationError
		missing   *MissingFieldError
		mismatch  *TypeMismatchError
		encoding  *EncodingError
		invoke    *InvocationError
		transport *TransportError
		config    *ConfigurationError
	)
	switch {
	case errors.As(err, &unknown):
		return values.ErrorUnknownOperation
	case errors.As(err, &missing):
		return values.ErrorMissingField
	case errors.As(err, &mismatch), errors.As(err, &encoding):
		return values.ErrorTypeMismatch
	case errors.As(err, &invoke):
		return values.ErrorInvocation
	case errors.As(err, &transport):
		return values.ErrorTransport
	case errors.As(err, &config):
		return values.ErrorConfiguration
	default:
		return values.ErrorTransport
	}
}

// ToResult converts err into the failure variant of an invocation result.
// Remote errors keep their code and remote message; everything else uses the
// error text as the message.
func ToResult(err error) execution.InvocationResult {
	var invoke *InvocationError
	if errors.As(err, &invoke) {
		return execution.Failure(values.ErrorInvocation, invoke.Code, invoke.Message)
	}
	return execution.Failure(KindOf(err), "", err.Error())
}
