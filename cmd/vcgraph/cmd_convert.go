package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vcgraph/edgelist"
	"github.com/dhamidi/vcgraph/format"
)

func newConvertCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <edgelist>",
		Short: "Relabel a raw edge list dump and write it as a PACE instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], outPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

func runConvert(inPath, outPath string, stdout io.Writer) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open edge list: %w", err)
	}
	defer in.Close()

	res, err := edgelist.Read(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	log.Infof("%s: relabelled %d vertices, %d edges", inPath, res.Graph.Order(), res.Graph.NumEdges())

	if outPath == "" {
		return format.NewPACEEncoder(stdout).Encode(res.Graph)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := format.NewPACEEncoder(out).Encode(res.Graph); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return out.Close()
}
