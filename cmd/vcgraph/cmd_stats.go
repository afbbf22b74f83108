package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/vcgraph/format"
)

func newStatsCmd() *cobra.Command {
	var input instanceFlags

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print degree statistics of an instance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := input.load(args)
			if err != nil {
				return err
			}
			return format.Summarize(g).WriteTable(cmd.OutOrStdout())
		},
	}

	input.register(cmd)

	return cmd
}
