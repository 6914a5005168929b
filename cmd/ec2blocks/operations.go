package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
)

// operationSummary is one row of `operations list`.
type operationSummary struct {
	Name           string `json:"name" yaml:"name"`
	Description    string `json:"description" yaml:"description"`
	SupportsDryRun bool   `json:"supports_dry_run" yaml:"supports_dry_run"`
	Paginated      bool   `json:"paginated" yaml:"paginated"`
}

// operationDetail is the output of `operations describe`.
type operationDetail struct {
	Input          map[string]any `json:"input" yaml:"input"`
	Output         map[string]any `json:"output" yaml:"output"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	SupportsDryRun bool           `json:"supports_dry_run" yaml:"supports_dry_run"`
	Paginated      bool           `json:"paginated" yaml:"paginated"`
}

func summarize(d operation.Descriptor) operationSummary {
	return operationSummary{
		Name:           d.Name,
		Description:    d.Description,
		SupportsDryRun: d.SupportsDryRun,
		Paginated:      d.Paginated,
	}
}

func newOperationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "Inspect the operation catalog",
	}
	cmd.AddCommand(newOperationsListCmd(), newOperationsDescribeCmd(), newOperationsLintCmd())
	return cmd
}

func newOperationsListCmd() *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: withContainer(&opts, func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			descs := cc.Container.Registry().Descriptors()
			rows := make([]operationSummary, 0, len(descs))
			for _, d := range descs {
				rows = append(rows, summarize(d))
			}

			out := cmd.OutOrStdout()
			if cc.Format != "table" {
				return encode(out, cc.Format, rows)
			}

			//nolint:errcheck // Best-effort terminal output
			for _, r := range rows {
				flags := ""
				if r.Paginated {
					flags += " [paginated]"
				}
				if r.SupportsDryRun {
					flags += " [dry-run]"
				}
				fmt.Fprintf(out, "%-48s%s\n", r.Name, flags)
			}
			return nil
		}),
	}

	opts.RegisterFlags(cmd)
	return cmd
}

func newOperationsDescribeCmd() *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "describe <operation>",
		Short: "Show an operation's input and output schema",
		Args:  cobra.ExactArgs(1),
		RunE: withContainer(&opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			d, err := cc.Container.Registry().Lookup(args[0])
			if err != nil {
				return err
			}

			detail := operationDetail{
				Input:          d.InputSchema(),
				Output:         d.OutputSchema(),
				Name:           d.Name,
				Description:    d.Description,
				SupportsDryRun: d.SupportsDryRun,
				Paginated:      d.Paginated,
			}

			format := cc.Format
			if format == "table" {
				format = "yaml"
			}
			return encode(cmd.OutOrStdout(), format, detail)
		}),
	}

	opts.RegisterFlags(cmd)
	return cmd
}

func newOperationsLintCmd() *cobra.Command {
	opts := DefaultCommonOptions()
	block := &blockOptions{}

	cmd := &cobra.Command{
		Use:   "lint [operation]",
		Short: "Validate a config block against an operation's input schema",
		Long: `Validate a config block without calling the service. The block is
assembled exactly as invoke would assemble it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: withContainer(&opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			op, blockConfig, err := block.resolveBlock(cc, args)
			if err != nil {
				return err
			}

			if err := cc.Container.Registry().ValidateConfig(op, blockConfig); err != nil {
				return err
			}

			//nolint:errcheck // Best-effort terminal output
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s config is valid\n", op)
			return nil
		}),
	}

	opts.RegisterFlags(cmd)
	block.registerFlags(cmd)
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		encoder := yaml.NewEncoder(w, yaml.Indent(2))
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}
}

func init() {
	rootCmd.AddCommand(newOperationsCmd())
}
