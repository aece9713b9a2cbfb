package alu

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode is a 3-bit ALU operation selector.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD = Opcode(0) // ADD
	OP_SUB = Opcode(1) // SUB
	OP_AND = Opcode(2) // AND
	OP_OR  = Opcode(3) // OR
	OP_XOR = Opcode(4) // XOR
	OP_NOT = Opcode(5) // NOT
	OP_SLT = Opcode(6) // SLT
	OP_SLL = Opcode(7) // SLL
)

const (
	OPCODE_BITS  = 3                // Width of an opcode.
	OPCODE_COUNT = 1 << OPCODE_BITS // Number of defined operations.
)

// Valid returns true if the opcode selects one of the defined operations.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OPCODE_COUNT
}

// Code returns the opcode as a 3-bit binary string, ie "101".
func (op Opcode) Code() string {
	if !op.Valid() {
		return strings.Repeat("?", OPCODE_BITS)
	}
	return fmt.Sprintf("%0*b", OPCODE_BITS, int(op))
}

// ParseOpcode decodes a 3-bit binary opcode string.
func ParseOpcode(code string) (op Opcode, ok bool) {
	if len(code) != OPCODE_BITS {
		return
	}

	value, err := strconv.ParseUint(code, 2, 8)
	if err != nil {
		return
	}

	op, ok = Opcode(value), true
	return
}

// LookupOpcode decodes either a 3-bit binary opcode string or an
// operation mnemonic (case-insensitive).
func LookupOpcode(word string) (op Opcode, ok bool) {
	op, ok = ParseOpcode(word)
	if ok {
		return
	}

	word = strings.ToUpper(word)
	for entry := range Catalog() {
		if entry.Name == word {
			return entry.Opcode, true
		}
	}

	return
}
