package output

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// QuerySink projects success payloads through an expr expression before
// passing events on, e.g. `map(TransitGateways, .TransitGatewayId)`.
// The payload's top-level fields are the expression's variables.
// Failures pass through unchanged.
type QuerySink struct {
	next    ports.EventSink
	program *vm.Program
	query   string
}

// NewQuerySink compiles query once.
func NewQuerySink(next ports.EventSink, query string) (*QuerySink, error) {
	program, err := expr.Compile(query, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	return &QuerySink{next: next, program: program, query: query}, nil
}

// Emit implements ports.EventSink.
func (s *QuerySink) Emit(ctx context.Context, e execution.Event) error {
	if !e.Result.IsSuccess() {
		return s.next.Emit(ctx, e)
	}

	payload, err := genericPayload(e.Result.Payload)
	if err != nil {
		return err
	}
	env, ok := payload.(map[string]any)
	if !ok {
		env = map[string]any{}
	}

	projected, err := expr.Run(s.program, env)
	if err != nil {
		return fmt.Errorf("query %q failed on %s: %w", s.query, e.Operation, err)
	}

	e.Result.Payload = map[string]any{"result": projected}
	return s.next.Emit(ctx, e)
}
