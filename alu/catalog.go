package alu

import (
	"iter"
)

// Operation is a catalog entry describing one opcode.
type Operation struct {
	Opcode      Opcode
	Name        string
	Description string
}

var _catalog = [OPCODE_COUNT]Operation{
	{OP_ADD, OP_ADD.String(), "Addition"},
	{OP_SUB, OP_SUB.String(), "Subtraction"},
	{OP_AND, OP_AND.String(), "Logical AND"},
	{OP_OR, OP_OR.String(), "Logical OR"},
	{OP_XOR, OP_XOR.String(), "Logical XOR"},
	{OP_NOT, OP_NOT.String(), "Logical NOT"},
	{OP_SLT, OP_SLT.String(), "Set if Less Than"},
	{OP_SLL, OP_SLL.String(), "Shift Left Logical"},
}

// Describe returns the name and description of an opcode.
func Describe(op Opcode) (name, description string, ok bool) {
	if !op.Valid() {
		return
	}

	entry := _catalog[op]
	return entry.Name, entry.Description, true
}

// Catalog iterates over every operation in opcode order.
func Catalog() iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for _, entry := range _catalog {
			if !yield(entry) {
				return
			}
		}
	}
}
