package alu

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrOperandRange  = errors.New(f("Values must be 0-15"))
	ErrOpcodeInvalid = errors.New(f("Invalid opcode"))
	ErrCarryRange    = errors.New(f("Carry in must be 0 or 1"))
)
