package vector

import (
	"errors"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/alu4/alu"
)

// Verbose enables logging of loaded vectors.
var Verbose bool

// predeclared binds each operation mnemonic to its opcode string, so that
// scripts may write (2, 3, ADD).
func predeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for entry := range alu.Catalog() {
		pred[entry.Name] = starlark.String(entry.Opcode.Code())
	}
	return pred
}

// Load executes a Starlark vector script and returns its vectors.
//
// The script must bind 'vectors' to a sequence of tuples
// (a, b, opcode[, cin]). Operands may be -8..15, negative values being
// two's-complement. The opcode is a 3-bit string or a mnemonic. If src is
// nil, the script is read from filename.
func Load(filename string, src any) (inputs []alu.Input, err error) {
	thread := &starlark.Thread{Name: "vector"}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared())
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	value, ok := globals["vectors"]
	if !ok {
		err = ErrScriptVectors
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = errors.Join(ErrScriptVectors, ErrVectorType)
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for n := 0; iter.Next(&item); n++ {
		var in alu.Input
		in, err = inputOf(item)
		if err != nil {
			err = ErrVector{Index: n, Err: err}
			inputs = nil
			return
		}
		if Verbose {
			log.Printf("vector: %v: %v", filename, in)
		}
		inputs = append(inputs, in)
	}

	return
}

// inputOf converts one script tuple into validated ALU inputs.
func inputOf(item starlark.Value) (in alu.Input, err error) {
	tuple, ok := item.(starlark.Indexable)
	if !ok || tuple.Len() < 3 || tuple.Len() > 4 {
		err = ErrVectorShape
		return
	}

	in.A, err = operandOf(tuple.Index(0))
	if err != nil {
		return
	}

	in.B, err = operandOf(tuple.Index(1))
	if err != nil {
		return
	}

	code, ok := starlark.AsString(tuple.Index(2))
	if !ok {
		err = ErrVectorType
		return
	}
	in.Op, ok = alu.LookupOpcode(code)
	if !ok {
		err = alu.ErrOpcodeInvalid
		return
	}

	if tuple.Len() == 4 {
		var cin int
		cin, err = starlark.AsInt32(tuple.Index(3))
		if err != nil {
			err = errors.Join(ErrVectorType, err)
			return
		}
		if cin < 0 || cin > 1 {
			err = alu.ErrCarryRange
			return
		}
		in.CarryIn = alu.Bit(cin)
	}

	return
}

func operandOf(value starlark.Value) (n alu.Nibble, err error) {
	i, err := starlark.AsInt32(value)
	if err != nil {
		err = errors.Join(ErrVectorType, err)
		return
	}

	if i < alu.SIGNED_MIN || i > int(alu.NIBBLE_MAX) {
		err = alu.ErrOperandRange
		return
	}

	n = alu.FromSigned(i)
	return
}
