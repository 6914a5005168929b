package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

func newInvokeCmd() *cobra.Command {
	opts := DefaultCommonOptions()
	block := &blockOptions{}

	cmd := &cobra.Command{
		Use:   "invoke [operation]",
		Short: "Invoke one EC2 operation and emit its result",
		Long: `Invoke one EC2 networking operation. The config block comes from
--file, --set overrides and the region flags, and the result is emitted as a
single event.

Examples:
  ec2blocks invoke DescribeTransitGateways --region us-east-1
  ec2blocks invoke -f create-tgw.yaml --dry-run
  ec2blocks invoke DeleteRoute --set RouteTableId=rtb-1 --set DestinationCidrBlock=10.0.0.0/16`,
		Args: cobra.MaximumNArgs(1),
		RunE: withContainer(&opts, func(cc *CommandContext, _ *cobra.Command, args []string) error {
			req, err := block.invokeRequest(cc, args)
			if err != nil {
				return err
			}

			resp, err := cc.Container.InvokeBlockUseCase().Execute(cc.Context, req)
			if err != nil {
				return err
			}
			return resultError(resp.Operation, resp.Result)
		}),
	}

	opts.RegisterFlags(cmd)
	opts.RegisterQueryFlag(cmd)
	block.registerInvokeFlags(cmd)
	return cmd
}

// resultError turns a failure result into a non-zero exit. A successful
// dry-run permission check is not a failure.
func resultError(op string, r execution.InvocationResult) error {
	if r.IsSuccess() || r.DryRunSucceeded() {
		return nil
	}
	if r.Code != "" {
		return fmt.Errorf("%s failed: %s (%s)", op, r.ErrorKind, r.Code)
	}
	return fmt.Errorf("%s failed: %s", op, r.ErrorKind)
}

func init() {
	rootCmd.AddCommand(newInvokeCmd())
}
