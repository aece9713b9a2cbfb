package console

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrTooFewValues = errors.New(f("Need at least 3 values (a b opcode)"))
	ErrInputFormat  = errors.New(f("Invalid input format"))
)

// ErrParseNumber reports a token that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrInputFormat
}

// ErrParseExpression reports a $(...) token that does not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrInputFormat
}
