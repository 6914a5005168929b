package dto

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// InvokeResponse is the outcome of one invocation.
type InvokeResponse struct {
	Result       execution.InvocationResult
	InvocationID values.InvocationID
	Operation    string
	Region       string
}

// WalkResponse summarizes a paginated traversal.
type WalkResponse struct {
	// Last is the result of the final page fetched.
	Last         execution.InvocationResult
	InvocationID values.InvocationID
	Operation    string
	Pages        int
	// Truncated is set when MaxPages stopped the walk before the last page.
	Truncated bool
}
