// Package vector supplies ALU test vectors: a fixed canned suite covering
// arithmetic, logic, comparison and shift, plus vectors loaded from
// Starlark scripts.
package vector

import (
	"iter"
	"slices"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/internal"
)

// neg converts a small signed literal to its nibble bit pattern.
func neg(value int) alu.Nibble {
	return alu.FromSigned(value)
}

var _canned = []alu.Input{
	// Addition
	{A: 2, B: 3, Op: alu.OP_ADD},             // Normal addition
	{A: 7, B: 7, Op: alu.OP_ADD},             // Signed overflow
	{A: 15, B: 1, Op: alu.OP_ADD},            // Wrap around
	{A: neg(-8), B: neg(-8), Op: alu.OP_ADD}, // Negative overflow
	{A: 7, B: 0, Op: alu.OP_ADD, CarryIn: 1}, // Carry in crosses the sign

	// Subtraction
	{A: 4, B: 2, Op: alu.OP_SUB},             // Normal subtraction
	{A: 2, B: 4, Op: alu.OP_SUB},             // Negative result
	{A: 0, B: 1, Op: alu.OP_SUB},             // Borrow needed
	{A: neg(-8), B: 1, Op: alu.OP_SUB},       // Underflow
	{A: 0, B: 0, Op: alu.OP_SUB, CarryIn: 1}, // Borrow in

	// Logical
	{A: 10, B: 12, Op: alu.OP_AND},
	{A: 10, B: 12, Op: alu.OP_OR},
	{A: 10, B: 12, Op: alu.OP_XOR},
	{A: 10, B: 0, Op: alu.OP_NOT},

	// Comparison
	{A: 2, B: 4, Op: alu.OP_SLT},       // True
	{A: 4, B: 2, Op: alu.OP_SLT},       // False
	{A: neg(-8), B: 1, Op: alu.OP_SLT}, // Negative operand

	// Shift
	{A: 10, B: 0, Op: alu.OP_SLL},
	{A: 1, B: 0, Op: alu.OP_SLL},
	{A: 8, B: 0, Op: alu.OP_SLL}, // Carry out
}

// Canned iterates over the fixed test vector suite.
func Canned() iter.Seq[alu.Input] {
	return slices.Values(_canned)
}

// All iterates over the canned suite followed by each extra vector list.
func All(extra ...[]alu.Input) iter.Seq[alu.Input] {
	seqs := []iter.Seq[alu.Input]{Canned()}
	for _, list := range extra {
		seqs = append(seqs, slices.Values(list))
	}

	return internal.SeqConcat(seqs...)
}
