package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/ec2blocks/internal/infrastructure/output"
)

// CommonOptions contains flags shared across all commands.
type CommonOptions struct {
	// Output. An empty Format falls back to the system config.
	Format string
	Query  string

	// Execution
	Timeout time.Duration

	// Flags (bools grouped for alignment)
	Indent  bool
	NoColor bool
	Verbose bool
	Quiet   bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Timeout: 2 * time.Minute,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	// Execution
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for entire execution (0 to disable)")

	// Output
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml (default from config, else table)")
	cmd.Flags().BoolVar(&opts.Indent, "indent", false,
		"Indent JSON output")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable colored table output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
}

// RegisterQueryFlag adds --query to commands that emit events.
func (opts *CommonOptions) RegisterQueryFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Query, "query", "",
		"Expression projecting each success payload (e.g. \"map(TransitGateways, .TransitGatewayId)\")")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if opts.Verbose && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}

	formats := output.NewSinkFactory().SupportedFormats()
	if opts.Format != "" && !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, formats)
	}

	return nil
}
