package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/ec2blocks/internal/application/dto"
)

func newWalkCmd() *cobra.Command {
	opts := DefaultCommonOptions()
	block := &blockOptions{}
	var (
		maxPages int
		pageSize int32
	)

	cmd := &cobra.Command{
		Use:   "walk [operation]",
		Short: "Walk every page of a list-shaped operation",
		Long: `Invoke a paginated EC2 operation repeatedly, following NextToken until
the service stops returning one. Each page is emitted as its own event.`,
		Args: cobra.MaximumNArgs(1),
		RunE: withContainer(&opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			req, err := block.invokeRequest(cc, args)
			if err != nil {
				return err
			}

			pagination := cc.Container.SystemConfig().Pagination
			if !cmd.Flags().Changed("max-pages") {
				maxPages = pagination.MaxPages
			}
			if !cmd.Flags().Changed("page-size") {
				pageSize = pagination.PageSize
			}
			if maxPages < 0 || pageSize < 0 {
				return fmt.Errorf("--max-pages and --page-size must not be negative")
			}

			resp, err := cc.Container.WalkBlockUseCase().Execute(cc.Context, dto.WalkRequest{
				Invoke:   req,
				PageSize: pageSize,
				MaxPages: maxPages,
			})
			if err != nil {
				return err
			}

			failures := 0
			for _, e := range cc.Container.Events().FindByInvocation(cc.Context, resp.InvocationID) {
				if !e.Result.IsSuccess() {
					failures++
				}
			}
			cc.Logger.Info("walk complete",
				"operation", resp.Operation,
				"invocation_id", resp.InvocationID.String(),
				"pages", resp.Pages,
				"failures", failures,
				"truncated", resp.Truncated)
			return resultError(resp.Operation, resp.Last)
		}),
	}

	opts.RegisterFlags(cmd)
	opts.RegisterQueryFlag(cmd)
	block.registerFlags(cmd)
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Stop after this many pages (0 for no limit)")
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "MaxResults sent with every page (0 for the service default)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newWalkCmd())
}
