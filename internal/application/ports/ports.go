// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
)

// ClientHandle is an opaque handle to a constructed remote client.
// Handles are produced per invocation and never shared across regions.
type ClientHandle interface {
	Region() string
}

// ClientResolver builds a client for one execution context.
type ClientResolver interface {
	Resolve(ctx context.Context, execCtx execution.Context) (ClientHandle, error)
}

// CredentialSource supplies the credentials of the hosting environment.
type CredentialSource interface {
	Credentials(ctx context.Context) (execution.Credentials, error)
}

// OperationCommand performs one remote call with a region-stripped request.
// It returns the raw response or a classified error.
type OperationCommand func(ctx context.Context, client ClientHandle, request map[string]any) (any, error)

// OperationCatalog is the read-only descriptor registry plus its dispatch table.
type OperationCatalog interface {
	// Lookup returns the descriptor for name or an UnknownOperationError.
	Lookup(name string) (operation.Descriptor, error)

	// Command returns the remote call bound to name.
	Command(name string) (OperationCommand, bool)

	// Descriptors lists every registered descriptor sorted by name.
	Descriptors() []operation.Descriptor
}

// EventSink receives emitted invocation events.
type EventSink interface {
	Emit(ctx context.Context, event execution.Event) error
}

// Scrubber removes secret material from diagnostic output. It is applied to
// failure messages and logged requests, never to remote payloads.
type Scrubber interface {
	ScrubString(input string) string
	Redact(data any) any
}
