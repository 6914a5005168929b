package services

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/ec2blocks/internal/application/dto"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// WalkBlockUseCase traverses a list operation, emitting one event per page.
type WalkBlockUseCase struct {
	walker *PaginationWalker
	pipeline
}

// NewWalkBlockUseCase creates a new walk block use case.
func NewWalkBlockUseCase(
	catalog ports.OperationCatalog,
	binder *Binder,
	resolver ports.ClientResolver,
	walker *PaginationWalker,
	emitter *Emitter,
	logger *slog.Logger,
) *WalkBlockUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &WalkBlockUseCase{
		walker: walker,
		pipeline: pipeline{
			catalog:  catalog,
			binder:   binder,
			resolver: resolver,
			emitter:  emitter,
			logger:   logger,
		},
	}
}

// Execute walks the requested operation until the remote stops returning a
// continuation token, a page fails, or MaxPages pages were emitted.
// A failure before the first remote call is emitted as a single event.
func (uc *WalkBlockUseCase) Execute(ctx context.Context, req dto.WalkRequest) (*dto.WalkResponse, error) {
	id := values.NewInvocationID()
	resp := &dto.WalkResponse{InvocationID: id, Operation: req.Invoke.Operation}
	meta := execution.EventMeta{
		InvocationID: id,
		Operation:    req.Invoke.Operation,
		Region:       configRegion(req.Invoke.Config),
	}

	p, err := uc.prepare(ctx, req.Invoke)
	if err != nil {
		resp.Last = apperrors.ToResult(err)
		return resp, uc.emitter.Emit(ctx, meta, resp.Last)
	}
	meta.Region = p.binding.Region

	var maxResults *int32
	if req.PageSize > 0 {
		maxResults = &req.PageSize
	}

	pages, err := uc.walker.Walk(ctx, p.desc, p.client, p.binding.Request, maxResults)
	if err != nil {
		resp.Last = apperrors.ToResult(err)
		return resp, uc.emitter.Emit(ctx, meta, resp.Last)
	}

	for page := range pages {
		resp.Pages++
		resp.Last = page.Result
		meta.Page = page.Number
		if err := uc.emitter.Emit(ctx, meta, page.Result); err != nil {
			return resp, err
		}
		if req.MaxPages > 0 && resp.Pages >= req.MaxPages {
			resp.Truncated = page.NextToken != ""
			break
		}
	}

	uc.logger.Debug("walk finished",
		"invocation_id", id,
		"operation", req.Invoke.Operation,
		"pages", resp.Pages,
		"truncated", resp.Truncated,
	)
	return resp, nil
}
