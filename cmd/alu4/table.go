package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/alu4/console"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the ALU operation codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := &console.Presenter{Out: cmd.OutOrStdout()}
			p.Table()
		},
	}
}
