package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/console"
	"github.com/ezrec/alu4/vector"
)

func newTestCmd() *cobra.Command {
	var scripts []string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the canned ALU test vectors",
		Long: `Test evaluates the built-in test vectors, covering arithmetic,
logic, comparison and shift operations including boundary cases.

Additional vectors may be supplied as Starlark scripts with --script.
Each script binds 'vectors' to a list of (a, b, opcode[, cin]) tuples,
for example:

    vectors = [(7, 7, ADD), (-8, 1, "001", 1)]
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var extra [][]alu.Input
			for _, script := range scripts {
				var list []alu.Input
				list, err = vector.Load(script, nil)
				if err != nil {
					return
				}
				extra = append(extra, list)
			}

			p := &console.Presenter{Out: cmd.OutOrStdout()}
			p.Suite(vector.All(extra...))

			return
		},
	}

	cmd.Flags().StringArrayVarP(&scripts, "script", "s", nil, "Starlark vector script to run after the canned vectors")

	return cmd
}
