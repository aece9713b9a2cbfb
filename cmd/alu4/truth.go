package main

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/console"
)

func newTruthCmd() *cobra.Command {
	var cin int

	cmd := &cobra.Command{
		Use:   "truth opcode",
		Short: "Print the truth table of one operation",
		Long: `Truth prints every input combination of one operation with its
result, flags and the packed lookup-RAM byte. The opcode is a 3-bit
code or its mnemonic. By default both carry in values are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			op, ok := alu.LookupOpcode(args[0])
			if !ok {
				err = alu.ErrOpcodeInvalid
				return
			}

			rows := alu.Truth(op)
			if cmd.Flags().Changed("cin") {
				if cin < 0 || cin > 1 {
					err = ErrCarryFlag
					return
				}
				rows = onlyCarry(rows, alu.Bit(cin))
			}

			p := &console.Presenter{Out: cmd.OutOrStdout()}
			p.Truth(op, rows)

			return
		},
	}

	cmd.Flags().IntVar(&cin, "cin", 0, "List only rows with this carry in")

	return cmd
}

// onlyCarry filters truth table rows by carry in.
func onlyCarry(rows iter.Seq2[alu.Input, alu.Outcome], cin alu.Bit) iter.Seq2[alu.Input, alu.Outcome] {
	return func(yield func(alu.Input, alu.Outcome) bool) {
		for in, out := range rows {
			if in.CarryIn != cin {
				continue
			}
			if !yield(in, out) {
				return
			}
		}
	}
}
