package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/ec2blocks/internal/infrastructure/container"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/output"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/redaction"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/system"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	Options   *CommonOptions
	// Format is the effective output format.
	Format string
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization:
// system config, redacting logger, event sink and timeout.
func withContainer(opts *CommonOptions, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := opts.ValidateFlags(); err != nil {
			return err
		}

		sysCfg, err := system.Load(viper.GetViper())
		if err != nil {
			return err
		}

		redactor, err := redaction.New(sysCfg.RedactorConfig())
		if err != nil {
			return fmt.Errorf("failed to initialize redactor: %w", err)
		}

		logger := newLogger(cmd.ErrOrStderr(), redactor, opts)
		slog.SetDefault(logger)

		format := opts.Format
		if format == "" {
			format = sysCfg.Output.Format
		}
		if format == "" {
			format = "table"
		}

		sink, err := output.NewSinkFactory().Create(format, cmd.OutOrStdout(), output.SinkOptions{
			Query:  opts.Query,
			Indent: opts.Indent || sysCfg.Output.Indent,
			Color:  !opts.NoColor && os.Getenv("NO_COLOR") == "",
		})
		if err != nil {
			return err
		}

		c, err := container.New(container.Options{
			Logger:       logger,
			SystemConfig: sysCfg,
			Sink:         sink,
			Redactor:     redactor,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx, cancel := opts.ApplyToContext(cmd.Context())
		defer cancel()

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
			Options:   opts,
			Format:    format,
		}, cmd, args)
	}
}
