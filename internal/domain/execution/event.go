package execution

import (
	"time"

	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// Event is what the emitter hands to the event sink: one per remote call.
type Event struct {
	Timestamp    time.Time           `json:"timestamp" yaml:"timestamp"`
	InvocationID values.InvocationID `json:"invocation_id" yaml:"invocation_id"`
	Operation    string              `json:"operation" yaml:"operation"`
	Region       string              `json:"region,omitempty" yaml:"region,omitempty"`
	Result       InvocationResult    `json:"result" yaml:"result"`
	// Page is the 1-based page number for paginated traversals, 0 otherwise.
	Page int `json:"page,omitempty" yaml:"page,omitempty"`
}

// EventMeta identifies the invocation an event belongs to.
type EventMeta struct {
	InvocationID values.InvocationID
	Operation    string
	Region       string
	Page         int
}
