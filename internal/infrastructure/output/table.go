package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// maxListItems bounds how many list items are printed per field.
const maxListItems = 20

// TableSink prints events as a human-readable summary.
type TableSink struct {
	writer      io.Writer
	mu          sync.Mutex
	EnableColor bool
}

// NewTableSink creates a new table sink.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{
		writer:      w,
		EnableColor: true,
	}
}

func (s *TableSink) colorize(text, code string) string {
	if !s.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Emit implements ports.EventSink.
//
//nolint:errcheck // Best-effort terminal output
func (s *TableSink) Emit(_ context.Context, e execution.Event) error {
	view, err := newEventView(e)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	symbol, color := s.statusInfo(e.Result)
	header := fmt.Sprintf("%s %s", s.colorize(symbol, color), s.colorize(e.Operation, colorBold))
	if e.Region != "" {
		header += " " + s.colorize("["+e.Region+"]", colorCyan)
	}
	if e.Page > 0 {
		header += fmt.Sprintf(" page %d", e.Page)
	}
	header += " " + s.colorize("("+e.Result.Duration.Round(time.Millisecond).String()+")", colorGray)

	fmt.Fprintln(s.writer, s.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintln(s.writer, header)

	if !e.Result.IsSuccess() {
		s.formatFailure(e.Result)
		return nil
	}

	s.formatPayload(view.Payload)
	return nil
}

func (s *TableSink) statusInfo(r execution.InvocationResult) (string, string) {
	switch {
	case r.IsSuccess():
		return "✓", colorGreen
	case r.DryRunSucceeded():
		return "◌", colorYellow
	default:
		return "✗", colorRed
	}
}

//nolint:errcheck // Best-effort terminal output
func (s *TableSink) formatFailure(r execution.InvocationResult) {
	if r.DryRunSucceeded() {
		fmt.Fprintf(s.writer, "  %s: %s\n", s.colorize("Dry run", colorYellow), r.Message)
		return
	}
	label := string(r.ErrorKind)
	if r.Code != "" {
		label += " " + r.Code
	}
	fmt.Fprintf(s.writer, "  %s: %s\n", s.colorize(label, colorRed), r.Message)
}

//nolint:errcheck // Best-effort terminal output
func (s *TableSink) formatPayload(payload any) {
	m, ok := payload.(map[string]any)
	if !ok {
		fmt.Fprintf(s.writer, "  %s\n", compact(payload))
		return
	}
	if len(m) == 0 {
		fmt.Fprintln(s.writer, s.colorize("  (no content)", colorGray))
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := m[k].(type) {
		case []any:
			fmt.Fprintf(s.writer, "  %s: %d item(s)\n", k, len(v))
			for i, item := range v {
				if i == maxListItems {
					fmt.Fprintf(s.writer, "    %s\n", s.colorize(fmt.Sprintf("... %d more", len(v)-maxListItems), colorGray))
					break
				}
				fmt.Fprintf(s.writer, "    - %s\n", compact(item))
			}
		default:
			fmt.Fprintf(s.writer, "  %s: %s\n", k, compact(v))
		}
	}
}

func compact(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
