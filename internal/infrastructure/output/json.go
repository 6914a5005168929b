package output

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// JSONSink writes one JSON document per event: JSON lines unless indented.
type JSONSink struct {
	writer io.Writer
	indent bool
	mu     sync.Mutex
}

// NewJSONSink creates a new JSON sink.
func NewJSONSink(w io.Writer, indent bool) *JSONSink {
	return &JSONSink{writer: w, indent: indent}
}

// Emit implements ports.EventSink.
func (s *JSONSink) Emit(_ context.Context, e execution.Event) error {
	view, err := newEventView(e)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.writer)
	if s.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(view)
}
