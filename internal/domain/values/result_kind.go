package values

import "fmt"

// ResultKind tags an invocation result as success or failure.
type ResultKind string

const (
	// ResultSuccess indicates the remote call returned a response
	ResultSuccess ResultKind = "success"
	// ResultFailure indicates the invocation failed locally or remotely
	ResultFailure ResultKind = "failure"
)

// IsSuccess returns true if this kind represents success
func (k ResultKind) IsSuccess() bool {
	return k == ResultSuccess
}

// Validate returns an error if the kind value is invalid
func (k ResultKind) Validate() error {
	switch k {
	case ResultSuccess, ResultFailure:
		return nil
	default:
		return fmt.Errorf("invalid result kind: %s", k)
	}
}
