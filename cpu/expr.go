package cpu

import (
	"errors"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprResult is the global the expression value is bound to.
const exprResult = "_result"

// evalExpression does compile-time $(...) evaluations.
//
// Predefines, labels, and variables are visible to the expression, in
// that order of precedence.
func (asm *Assembler) evalExpression(expr string, symbols *SymbolTable) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.predefine {
		v, _err := strconv.Atoi(str)
		if _err != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for name, address := range symbols.All() {
		pred[name] = starlark.MakeInt(address)
	}

	prog := exprResult + "=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict[exprResult]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}
