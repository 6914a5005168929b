package services

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/ec2blocks/internal/application/dto"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// pipeline holds the collaborators shared by the block use cases.
type pipeline struct {
	catalog    ports.OperationCatalog
	binder     *Binder
	resolver   ports.ClientResolver
	dispatcher *Dispatcher
	emitter    *Emitter
	logger     *slog.Logger
}

// prepared is everything needed to issue remote calls for one block.
type prepared struct {
	client  ports.ClientHandle
	desc    operation.Descriptor
	binding execution.Binding
}

// prepare runs lookup, bind and resolve. Any failure is returned as an error
// before a network call is attempted.
func (p *pipeline) prepare(ctx context.Context, req dto.InvokeRequest) (prepared, error) {
	desc, err := p.catalog.Lookup(req.Operation)
	if err != nil {
		return prepared{}, err
	}

	binding, err := p.binder.Bind(desc, req.Config)
	if err != nil {
		return prepared{desc: desc}, err
	}

	execCtx := execution.NewContext(binding.Region, req.Credentials).WithEndpoint(req.Endpoint)
	client, err := p.resolver.Resolve(ctx, execCtx)
	if err != nil {
		return prepared{desc: desc, binding: binding}, err
	}

	return prepared{client: client, desc: desc, binding: binding}, nil
}

// configRegion is the best-effort region for events emitted before binding
// succeeded.
func configRegion(config map[string]any) string {
	region, _ := config[operation.RegionKey].(string)
	return region
}

// InvokeBlockUseCase runs one block: lookup, bind, resolve, dispatch, emit.
// Exactly one event is emitted per call.
type InvokeBlockUseCase struct {
	pipeline
}

// NewInvokeBlockUseCase creates a new invoke block use case.
func NewInvokeBlockUseCase(
	catalog ports.OperationCatalog,
	binder *Binder,
	resolver ports.ClientResolver,
	dispatcher *Dispatcher,
	emitter *Emitter,
	logger *slog.Logger,
) *InvokeBlockUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvokeBlockUseCase{pipeline{
		catalog:    catalog,
		binder:     binder,
		resolver:   resolver,
		dispatcher: dispatcher,
		emitter:    emitter,
		logger:     logger,
	}}
}

// Execute invokes the requested operation. Invocation failures are reported
// in the response; the returned error is reserved for sink failures.
func (uc *InvokeBlockUseCase) Execute(ctx context.Context, req dto.InvokeRequest) (*dto.InvokeResponse, error) {
	id := values.NewInvocationID()
	resp := &dto.InvokeResponse{
		InvocationID: id,
		Operation:    req.Operation,
		Region:       configRegion(req.Config),
	}

	uc.logger.Debug("invoking block", "invocation_id", id, "operation", req.Operation, "request_id", req.Metadata.RequestID)

	p, err := uc.prepare(ctx, req)
	if err != nil {
		resp.Result = apperrors.ToResult(err)
	} else {
		resp.Region = p.binding.Region
		resp.Result = uc.dispatcher.Invoke(ctx, p.desc, p.client, p.binding.Request)
	}

	meta := execution.EventMeta{
		InvocationID: id,
		Operation:    req.Operation,
		Region:       resp.Region,
	}
	if err := uc.emitter.Emit(ctx, meta, resp.Result); err != nil {
		return resp, err
	}
	return resp, nil
}
