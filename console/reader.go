package console

import (
	"strings"

	"github.com/ezrec/alu4/alu"
)

// ParseLine parses "a b opcode [cin]" into validated ALU inputs.
//
// Operands must be 0..15 and the carry in 0 or 1. The opcode is a 3-bit
// code ("010") or a mnemonic ("and"). Tokens after the carry in are ignored.
func ParseLine(line string) (in alu.Input, err error) {
	words := strings.Fields(line)
	if len(words) < 3 {
		err = ErrTooFewValues
		return
	}

	a, err := parseNumber(words[0])
	if err != nil {
		return
	}

	b, err := parseNumber(words[1])
	if err != nil {
		return
	}

	cin := 0
	if len(words) > 3 {
		cin, err = parseNumber(words[3])
		if err != nil {
			return
		}
	}

	if a < 0 || a > int(alu.NIBBLE_MAX) || b < 0 || b > int(alu.NIBBLE_MAX) {
		err = alu.ErrOperandRange
		return
	}

	op, ok := alu.LookupOpcode(words[2])
	if !ok {
		err = alu.ErrOpcodeInvalid
		return
	}

	if cin < 0 || cin > 1 {
		err = alu.ErrCarryRange
		return
	}

	in = alu.Input{
		A:       alu.Nibble(a),
		B:       alu.Nibble(b),
		Op:      op,
		CarryIn: alu.Bit(cin),
	}

	return
}
