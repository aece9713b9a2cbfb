package main

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrCarryFlag = errors.New(f("--cin must be 0 or 1"))
)
