package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/vcgraph/format"
)

func newParseCmd() *cobra.Command {
	var input instanceFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an instance and dump the graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			g, err := input.load(args)
			if err != nil {
				return err
			}
			return enc.Encode(g)
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (pace, json, yaml)")

	return cmd
}
