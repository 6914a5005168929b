package values

import "fmt"

// ErrorKind classifies a failed invocation.
type ErrorKind string

const (
	// ErrorUnknownOperation indicates the descriptor lookup failed
	ErrorUnknownOperation ErrorKind = "UnknownOperation"
	// ErrorMissingField indicates a required config key was absent
	ErrorMissingField ErrorKind = "MissingField"
	// ErrorTypeMismatch indicates a config value had the wrong shape
	ErrorTypeMismatch ErrorKind = "TypeMismatch"
	// ErrorInvocation indicates the remote service rejected the call
	ErrorInvocation ErrorKind = "InvocationError"
	// ErrorTransport indicates no remote response was obtained
	ErrorTransport ErrorKind = "TransportError"
	// ErrorConfiguration indicates the execution context was unusable
	ErrorConfiguration ErrorKind = "ConfigurationError"
)

// IsLocal returns true if the failure was detected before any network call.
func (k ErrorKind) IsLocal() bool {
	switch k {
	case ErrorUnknownOperation, ErrorMissingField, ErrorTypeMismatch, ErrorConfiguration:
		return true
	default:
		return false
	}
}

// Validate returns an error if the kind value is invalid
func (k ErrorKind) Validate() error {
	switch k {
	case ErrorUnknownOperation, ErrorMissingField, ErrorTypeMismatch,
		ErrorInvocation, ErrorTransport, ErrorConfiguration:
		return nil
	default:
		return fmt.Errorf("invalid error kind: %s", k)
	}
}
