package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	var input instanceFlags

	cmd := &cobra.Command{
		Use:   "locate <id>",
		Short: "Print the file path of an instance id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse id: %w", err)
			}
			path, err := input.locator().Path(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.dir, "dir", "", "instance directory")

	return cmd
}
