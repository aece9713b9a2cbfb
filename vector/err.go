package vector

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrScript        = errors.New(f("vector script failed"))
	ErrScriptVectors = errors.New(f("vector script does not define 'vectors'"))
	ErrVectorShape   = errors.New(f("vector must be (a, b, opcode[, cin])"))
	ErrVectorType    = errors.New(f("vector field has the wrong type"))
)

// ErrVector locates a bad entry in a vector script.
type ErrVector struct {
	Index int
	Err   error
}

func (err ErrVector) Error() string {
	return f("vector %d: %v", err.Index, err.Err)
}

func (err ErrVector) Unwrap() error {
	return err.Err
}
