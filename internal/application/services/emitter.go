package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// Emitter hands invocation results to the event sink. Success payloads are
// forwarded as-is; failure messages are scrubbed of credential material.
type Emitter struct {
	sink     ports.EventSink
	scrubber ports.Scrubber
	logger   *slog.Logger
	now      func() time.Time
}

// NewEmitter creates an emitter. scrubber may be nil.
func NewEmitter(sink ports.EventSink, scrubber ports.Scrubber, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		sink:     sink,
		scrubber: scrubber,
		logger:   logger,
		now:      time.Now,
	}
}

// Emit sends one event for result.
func (e *Emitter) Emit(ctx context.Context, meta execution.EventMeta, result execution.InvocationResult) error {
	if !result.IsSuccess() && e.scrubber != nil {
		result.Message = e.scrubber.ScrubString(result.Message)
	}

	event := execution.Event{
		Timestamp:    e.now().UTC(),
		InvocationID: meta.InvocationID,
		Operation:    meta.Operation,
		Region:       meta.Region,
		Page:         meta.Page,
		Result:       result,
	}

	if err := e.sink.Emit(ctx, event); err != nil {
		return fmt.Errorf("failed to emit %s event: %w", meta.Operation, err)
	}

	e.logger.Debug("event emitted",
		"invocation_id", meta.InvocationID,
		"operation", meta.Operation,
		"kind", result.Kind,
		"page", meta.Page,
	)
	return nil
}
