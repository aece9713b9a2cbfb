package alu

import (
	"iter"
)

// TRUTH_ROWS is the number of rows in the truth table of one operation.
const TRUTH_ROWS = 2 * nibbleRange * nibbleRange

// Truth iterates over every input combination for an operation, ordered by
// carry in, then operand A, then operand B.
func Truth(op Opcode) iter.Seq2[Input, Outcome] {
	return func(yield func(Input, Outcome) bool) {
		for cin := range Bit(2) {
			for a := range Nibble(nibbleRange) {
				for b := range Nibble(nibbleRange) {
					in := Input{A: a, B: b, Op: op, CarryIn: cin}
					if !yield(in, in.Evaluate()) {
						return
					}
				}
			}
		}
	}
}
