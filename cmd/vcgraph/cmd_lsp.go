package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/vcgraph/lsp"
	"github.com/dhamidi/vcgraph/pace"
)

func newLSPCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []pace.Option
			if strict {
				opts = append(opts, pace.WithStrictSimple())
			}
			server := lsp.NewServer("0.1.0", opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "report self-loops and duplicate edges")

	return cmd
}
