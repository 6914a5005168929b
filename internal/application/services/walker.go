package services

import (
	"context"
	"iter"
	"log/slog"
	"maps"

	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
)

// PaginationWalker drives a list-shaped operation page by page, threading
// the continuation token. It does not aggregate pages.
type PaginationWalker struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewPaginationWalker creates a walker issuing its calls through dispatcher.
func NewPaginationWalker(dispatcher *Dispatcher, logger *slog.Logger) *PaginationWalker {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaginationWalker{dispatcher: dispatcher, logger: logger}
}

// Walk returns a lazy sequence of pages. Nothing is fetched until the
// sequence is ranged over; each range starts a fresh traversal from a nil
// token, and breaking out early leaves nothing to clean up.
//
// Any NextToken in request is ignored. maxResults, when non-nil, is sent as
// MaxResults on every page. A failed page is yielded and ends the sequence.
func (w *PaginationWalker) Walk(
	ctx context.Context,
	desc operation.Descriptor,
	client ports.ClientHandle,
	request map[string]any,
	maxResults *int32,
) (iter.Seq[execution.Page], error) {
	if !desc.Paginated {
		return nil, apperrors.NewConfigurationError("pagination", desc.Name+" is not a list operation", nil)
	}

	base := maps.Clone(request)
	if base == nil {
		base = map[string]any{}
	}
	delete(base, operation.NextTokenKey)
	if maxResults != nil {
		base[operation.MaxResultsKey] = *maxResults
	}

	return func(yield func(execution.Page) bool) {
		state := execution.NewPaginationState(maxResults)

		for number := 1; ; number++ {
			state.Begin()

			pageRequest := maps.Clone(base)
			requestToken := ""
			if state.Token != nil {
				requestToken = *state.Token
				pageRequest[operation.NextTokenKey] = requestToken
			}

			result := w.dispatcher.Invoke(ctx, desc, client, pageRequest)
			page := execution.Page{
				Number:       number,
				RequestToken: requestToken,
				Result:       result,
			}

			if !result.IsSuccess() {
				state.Stop()
				yield(page)
				return
			}

			page.NextToken = execution.ContinuationToken(result.Payload)
			if page.NextToken != "" && page.NextToken == requestToken {
				w.logger.Warn("remote repeated its continuation token, stopping",
					"operation", desc.Name, "page", number)
				page.NextToken = ""
			}

			next := state.Advance(page.NextToken)
			w.logger.Debug("page fetched", "operation", desc.Name, "page", number, "state", next)

			if !yield(page) || next == execution.WalkDone {
				return
			}
		}
	}, nil
}
