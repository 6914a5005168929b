package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/ec2blocks/internal/version"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ec2blocks",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ec2blocks version %s\n", info.Full())
		if !info.IsRelease() {
			fmt.Fprintln(out, "development build")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
