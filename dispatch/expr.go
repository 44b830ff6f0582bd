package dispatch

import (
	"strconv"
	"strings"

	"go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parseOperand converts operand text to a number. Text of the form $(expr)
// is evaluated as a Starlark expression over the equates and the math module.
func (d *Dispatcher) parseOperand(text string) (value float64, err error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "$(") && strings.HasSuffix(text, ")") {
		value, err = d.parenEval(text[2 : len(text)-1])
	} else {
		value, err = strconv.ParseFloat(text, 64)
	}

	if err != nil {
		err = &ErrInputParse{Text: text, Err: err}
		return
	}

	return
}

// parenEval evaluates a $(...) expression.
func (d *Dispatcher) parenEval(expr string) (value float64, err error) {
	thread := starlark.Thread{Name: "operand"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"math": math.Module,
	}
	for key, str := range d.Equate {
		number, _err := strconv.ParseFloat(str, 64)
		if _err != nil {
			// Only numeric equates are visible to expressions.
			continue
		}
		pred[key] = starlark.Float(number)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression
		return
	}

	value, ok = starlark.AsFloat(rc)
	if !ok {
		err = ErrExpression
		return
	}

	return
}
