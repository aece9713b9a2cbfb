package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/alu4/console"
)

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Evaluate ALU operations typed at the terminal",
		Long: `Interactive reads lines of the form "a b opcode [cin]" and prints
the outcome of each. Operands are 0-15, in decimal, 0b/0o/0x notation,
or a $(expr) expression. The opcode is a 3-bit code or its mnemonic.
Enter 'quit' or send an interrupt to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
			s.Verbose = opts.verbose

			return s.Run(cmd.Context())
		},
	}
}
