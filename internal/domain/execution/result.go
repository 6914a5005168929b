// Package execution provides the per-invocation data model: execution
// context, bound requests, results, pages and emitted events.
package execution

import (
	"time"

	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// DryRunSucceededCode is the remote error code EC2 returns when a DryRun
// request would have been authorized.
const DryRunSucceededCode = "DryRunOperation"

// InvocationResult is the tagged union produced by every dispatch:
// Kind success carries Payload, Kind failure carries ErrorKind/Code/Message.
type InvocationResult struct {
	// Payload is the raw remote response, forwarded unchanged.
	Payload   any               `json:"payload,omitempty" yaml:"payload,omitempty"`
	Kind      values.ResultKind `json:"kind" yaml:"kind"`
	ErrorKind values.ErrorKind  `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	// Code is the remote error code, when the remote produced one.
	Code     string        `json:"code,omitempty" yaml:"code,omitempty"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	// Duration is measured by the dispatcher. Sinks render it in milliseconds.
	Duration time.Duration `json:"-" yaml:"-"`
}

// Success wraps a raw response. A nil response becomes an empty object,
// which is a legitimate no-content result.
func Success(payload any) InvocationResult {
	if payload == nil {
		payload = map[string]any{}
	}
	return InvocationResult{Kind: values.ResultSuccess, Payload: payload}
}

// Failure builds the failure variant.
func Failure(kind values.ErrorKind, code, message string) InvocationResult {
	return InvocationResult{
		Kind:      values.ResultFailure,
		ErrorKind: kind,
		Code:      code,
		Message:   message,
	}
}

// IsSuccess reports whether the result is the success variant.
func (r InvocationResult) IsSuccess() bool {
	return r.Kind.IsSuccess()
}

// DryRunSucceeded reports whether the remote answered a DryRun request with
// its permission-granted response. The remote signals this as an error, so
// the result is still a failure.
func (r InvocationResult) DryRunSucceeded() bool {
	return r.Kind == values.ResultFailure &&
		r.ErrorKind == values.ErrorInvocation &&
		r.Code == DryRunSucceededCode
}
