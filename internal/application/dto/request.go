// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// InvokeRequest encapsulates all inputs needed to invoke one operation.
type InvokeRequest struct {
	// Config is the raw block configuration, region included.
	Config      map[string]any
	Operation   string
	Endpoint    string
	Credentials execution.Credentials
	Metadata    RequestMetadata
}

// WalkRequest encapsulates the inputs of a paginated traversal.
type WalkRequest struct {
	Invoke InvokeRequest
	// PageSize sets MaxResults on every page when positive.
	PageSize int32
	// MaxPages stops the traversal early when positive.
	MaxPages int
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
