// Package alu implements the combinational core of a 4-bit arithmetic logic
// unit.
//
// Two 4-bit operands (Nibble), a 3-bit operation selector (Opcode) and a
// carry-in bit produce a 4-bit result plus carry-out, zero, negative and
// overflow flags. Operands are stored unsigned (0..15) and interpreted as
// two's-complement (-8..7) by the arithmetic operations.
//
// Evaluate is pure: it keeps no state between calls and is safe for
// concurrent use.
package alu
