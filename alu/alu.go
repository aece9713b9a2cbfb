// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

import (
	"fmt"
	"strings"
)

// Flag bits of a packed outcome. The low four bits carry the result.
const (
	FLAG_CARRY    = 0x10 // Carry out.
	FLAG_ZERO     = 0x20 // Result is zero.
	FLAG_NEGATIVE = 0x40 // Result sign bit is set.
	FLAG_OVERFLOW = 0x80 // Signed overflow.
)

// Input is a single set of ALU inputs.
type Input struct {
	A       Nibble // Operand A.
	B       Nibble // Operand B.
	Op      Opcode // Operation selector.
	CarryIn Bit    // Carry in, used only by ADD and SUB.
}

// Outcome is the result and status flags of one evaluation.
type Outcome struct {
	Result   Nibble
	CarryOut Bit
	Zero     bool
	Negative bool
	Overflow bool
}

// Evaluate computes the outcome for the input.
func (in Input) Evaluate() Outcome {
	return Evaluate(in.A, in.B, in.Op, in.CarryIn)
}

// Validate checks that every field of the input is in range.
func (in Input) Validate() (err error) {
	switch {
	case !in.A.Valid(), !in.B.Valid():
		err = ErrOperandRange
	case !in.Op.Valid():
		err = ErrOpcodeInvalid
	case !in.CarryIn.Valid():
		err = ErrCarryRange
	}

	return
}

// String returns the input in "a b opcode cin" form.
func (in Input) String() string {
	return fmt.Sprintf("%d %d %v %d", in.A, in.B, in.Op.Code(), in.CarryIn)
}

// Evaluate runs a single ALU operation.
//
// Operands are masked to four bits and the carry in to one bit. An
// unrecognized opcode yields the zeroed outcome (result 0, zero flag set,
// all other flags clear).
func Evaluate(a, b Nibble, op Opcode, cin Bit) (out Outcome) {
	a &= NIBBLE_MASK
	b &= NIBBLE_MASK
	cin &= BIT_MASK

	sa := a.Signed()
	sb := b.Signed()

	switch op {
	case OP_ADD:
		// Carry is taken from the untruncated sum, overflow from the
		// sign of the wrapped result.
		sum := sa + sb + int(cin)
		out.CarryOut = bitOf(sum > SIGNED_MAX || sum < SIGNED_MIN)
		out.Result = FromSigned(sum)
		sr := out.Result.Signed()
		out.Overflow = (sa >= 0 && sb >= 0 && sr < 0) ||
			(sa < 0 && sb < 0 && sr >= 0)
	case OP_SUB:
		diff := sa - sb - int(cin)
		out.CarryOut = bitOf(diff < SIGNED_MIN)
		out.Result = FromSigned(diff)
		sr := out.Result.Signed()
		out.Overflow = (sa >= 0 && sb < 0 && sr < 0) ||
			(sa < 0 && sb >= 0 && sr >= 0)
	case OP_AND:
		out.Result = a & b
	case OP_OR:
		out.Result = a | b
	case OP_XOR:
		out.Result = a ^ b
	case OP_NOT:
		out.Result = ^a & NIBBLE_MASK
	case OP_SLT:
		if sa < sb {
			out.Result = 1
		}
	case OP_SLL:
		out.Result = (a << 1) & NIBBLE_MASK
		out.CarryOut = a.Bit(NIBBLE_BITS - 1)
	}

	out.Zero = out.Result == 0
	out.Negative = out.Result&NIBBLE_SIGN != 0

	return
}

// EvaluateCode runs a single ALU operation selected by a 3-bit opcode
// string. An unrecognized code yields the zeroed outcome.
func EvaluateCode(a, b Nibble, code string, cin Bit) Outcome {
	op, ok := ParseOpcode(code)
	if !ok {
		op = Opcode(-1)
	}

	return Evaluate(a, b, op, cin)
}

// Pack encodes the outcome as a single lookup-RAM byte: the result in the
// low nibble and the flags in the high nibble.
func (out Outcome) Pack() (cell byte) {
	cell = byte(out.Result & NIBBLE_MASK)
	if out.CarryOut != 0 {
		cell |= FLAG_CARRY
	}
	if out.Zero {
		cell |= FLAG_ZERO
	}
	if out.Negative {
		cell |= FLAG_NEGATIVE
	}
	if out.Overflow {
		cell |= FLAG_OVERFLOW
	}
	return
}

// Unpack decodes a lookup-RAM byte produced by Pack.
func Unpack(cell byte) Outcome {
	return Outcome{
		Result:   Nibble(cell) & NIBBLE_MASK,
		CarryOut: bitOf(cell&FLAG_CARRY != 0),
		Zero:     cell&FLAG_ZERO != 0,
		Negative: cell&FLAG_NEGATIVE != 0,
		Overflow: cell&FLAG_OVERFLOW != 0,
	}
}

// Flags returns the status flags as "NZVC", upper case when set.
func (out Outcome) Flags() string {
	var s strings.Builder

	flag := func(set bool, r rune) {
		if !set {
			r += 'a' - 'A'
		}
		s.WriteRune(r)
	}

	flag(out.Negative, 'N')
	flag(out.Zero, 'Z')
	flag(out.Overflow, 'V')
	flag(out.CarryOut != 0, 'C')

	return s.String()
}
