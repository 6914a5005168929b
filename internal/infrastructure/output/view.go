// Package output renders emitted invocation events for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// resultMetadataKey is the SDK's per-call middleware metadata. It carries no
// response data and does not serialize meaningfully.
const resultMetadataKey = "ResultMetadata"

// eventView is the serialized shape of an event. Field order is the order
// the JSON and YAML sinks print.
type eventView struct {
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
	InvocationID string    `json:"invocation_id" yaml:"invocation_id"`
	Operation    string    `json:"operation" yaml:"operation"`
	Region       string    `json:"region,omitempty" yaml:"region,omitempty"`
	Page         int       `json:"page,omitempty" yaml:"page,omitempty"`
	Kind         string    `json:"kind" yaml:"kind"`
	ErrorKind    string    `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Code         string    `json:"code,omitempty" yaml:"code,omitempty"`
	Message      string    `json:"message,omitempty" yaml:"message,omitempty"`
	DurationMS   int64     `json:"duration_ms" yaml:"duration_ms"`
	Payload      any       `json:"payload,omitempty" yaml:"payload,omitempty"`
}

func newEventView(e execution.Event) (eventView, error) {
	v := eventView{
		Timestamp:    e.Timestamp,
		InvocationID: e.InvocationID.String(),
		Operation:    e.Operation,
		Region:       e.Region,
		Page:         e.Page,
		Kind:         string(e.Result.Kind),
		ErrorKind:    string(e.Result.ErrorKind),
		Code:         e.Result.Code,
		Message:      e.Result.Message,
		DurationMS:   e.Result.Duration.Milliseconds(),
	}
	if e.Result.IsSuccess() {
		payload, err := genericPayload(e.Result.Payload)
		if err != nil {
			return eventView{}, err
		}
		v.Payload = payload
	}
	return v, nil
}

// genericPayload converts a raw response (SDK struct or map) into plain JSON
// values for rendering. The event's own payload is left untouched.
func genericPayload(payload any) (any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if m, ok := out.(map[string]any); ok {
		delete(m, resultMetadataKey)
	}
	return out, nil
}
