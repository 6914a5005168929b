package output

import (
	"context"
	"io"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// YAMLSink writes one YAML document per event.
type YAMLSink struct {
	writer  io.Writer
	mu      sync.Mutex
	written bool
}

// NewYAMLSink creates a new YAML sink.
func NewYAMLSink(w io.Writer) *YAMLSink {
	return &YAMLSink{writer: w}
}

// Emit implements ports.EventSink.
func (s *YAMLSink) Emit(_ context.Context, e execution.Event) error {
	view, err := newEventView(e)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.written {
		if _, err := io.WriteString(s.writer, "---\n"); err != nil {
			return err
		}
	}
	s.written = true

	encoder := yaml.NewEncoder(s.writer, yaml.Indent(2))
	if err := encoder.Encode(view); err != nil {
		return err
	}
	return encoder.Close()
}
