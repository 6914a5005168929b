package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

// Dispatcher executes exactly one remote call per Invoke and normalizes the
// outcome. It never retries.
type Dispatcher struct {
	catalog  ports.OperationCatalog
	scrubber ports.Scrubber
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the catalog's command table.
// scrubber may be nil.
func NewDispatcher(catalog ports.OperationCatalog, scrubber ports.Scrubber, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		catalog:  catalog,
		scrubber: scrubber,
		logger:   logger,
	}
}

// Invoke issues one round trip for desc with request. DryRun is forwarded
// verbatim; the remote decides what a dry run means. Errors and panics raised
// by the command are returned as the failure variant.
func (d *Dispatcher) Invoke(
	ctx context.Context,
	desc operation.Descriptor,
	client ports.ClientHandle,
	request map[string]any,
) (result execution.InvocationResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("operation panicked", "operation", desc.Name, "panic", r)
			result = execution.Failure(values.ErrorInvocation, "", fmt.Sprintf("%s: panic during invocation: %v", desc.Name, r))
		}
		result.Duration = time.Since(start)
	}()

	cmd, ok := d.catalog.Command(desc.Name)
	if !ok {
		return apperrors.ToResult(apperrors.NewUnknownOperationError(desc.Name))
	}

	dryRun := request[operation.DryRunKey] == true
	if dryRun && !desc.SupportsDryRun {
		// Dropping the flag would turn a permission check into a real mutation.
		return apperrors.ToResult(apperrors.NewConfigurationError(
			operation.DryRunKey, desc.Name+" does not support dry-run", nil))
	}

	if d.logger.Enabled(ctx, slog.LevelDebug) {
		d.logger.Debug("invoking operation",
			"operation", desc.Name,
			"region", client.Region(),
			"dry_run", dryRun,
			"request", d.redact(request),
		)
	}

	raw, err := cmd(ctx, client, request)
	if err != nil {
		result = apperrors.ToResult(err)
		d.logger.Debug("operation failed",
			"operation", desc.Name,
			"error_kind", result.ErrorKind,
			"code", result.Code,
			"duration", time.Since(start),
		)
		return result
	}

	d.logger.Debug("operation succeeded", "operation", desc.Name, "duration", time.Since(start))
	return execution.Success(raw)
}

func (d *Dispatcher) redact(request map[string]any) any {
	if d.scrubber == nil {
		return request
	}
	return d.scrubber.Redact(request)
}
