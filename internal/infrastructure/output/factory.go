package output

import (
	"fmt"
	"io"

	"github.com/reglet-dev/ec2blocks/internal/application/ports"
)

// SinkOptions tunes the sinks a factory creates.
type SinkOptions struct {
	// Query, when set, wraps the sink in a QuerySink.
	Query  string
	Indent bool
	Color  bool
}

// SinkFactory creates event sinks by format name.
type SinkFactory struct{}

// NewSinkFactory creates a new sink factory.
func NewSinkFactory() *SinkFactory {
	return &SinkFactory{}
}

// Create returns a sink for the given format name.
func (f *SinkFactory) Create(format string, writer io.Writer, options SinkOptions) (ports.EventSink, error) {
	var sink ports.EventSink
	switch format {
	case "table":
		t := NewTableSink(writer)
		t.EnableColor = options.Color
		sink = t
	case "json":
		sink = NewJSONSink(writer, options.Indent)
	case "yaml":
		sink = NewYAMLSink(writer)
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}

	if options.Query == "" {
		return sink, nil
	}
	return NewQuerySink(sink, options.Query)
}

// SupportedFormats returns list of available format names.
func (f *SinkFactory) SupportedFormats() []string {
	return []string{"table", "json", "yaml"}
}
