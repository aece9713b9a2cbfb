package console

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parseNumber decodes a decimal integer, a 0b/0o/0x prefixed integer, or a
// $(expr) Starlark expression.
func parseNumber(token string) (value int, err error) {
	if expr, ok := strings.CutPrefix(token, "$("); ok {
		expr, ok = strings.CutSuffix(expr, ")")
		if !ok {
			err = ErrParseNumber(token)
			return
		}
		return evaluate(expr)
	}

	base := 10
	digits := strings.TrimLeft(token, "+-")
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'b', 'B', 'o', 'O', 'x', 'X':
			base = 0
		}
	}

	value64, perr := strconv.ParseInt(token, base, 32)
	if perr != nil {
		err = ErrParseNumber(token)
		return
	}

	value = int(value64)
	return
}

// evaluate computes a Starlark integer expression.
func evaluate(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if serr != nil {
		err = ErrParseExpression(expr)
		return
	}

	value, serr = starlark.AsInt32(dict["rc"])
	if serr != nil {
		err = ErrParseExpression(expr)
		return
	}

	return
}
