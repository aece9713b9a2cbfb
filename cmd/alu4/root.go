package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ezrec/alu4/console"
	"github.com/ezrec/alu4/vector"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "alu4",
		Short: "4-bit ALU explorer",
		Long: `Alu4 simulates a 4-bit arithmetic logic unit. Two 4-bit operands,
a 3-bit opcode and a carry in produce a 4-bit result with carry out,
zero, negative and overflow flags.

Run with no command to print the operation codes.`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.Lmsgprefix | log.Lmicroseconds)
			log.SetPrefix("alu4: ")
			vector.Verbose = opts.verbose
		},

		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, f("ALU Visualizer"))
			fmt.Fprintln(out, "====================")
			p := &console.Presenter{Out: out}
			p.Table()
			fmt.Fprintln(out, f("Run with 'test' for comprehensive tests"))
			fmt.Fprintln(out, f("Run with 'interactive' for interactive mode"))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")

	cmd.AddCommand(
		newTableCmd(),
		newTestCmd(),
		newInteractiveCmd(opts),
		newTruthCmd(),
	)

	return cmd
}
