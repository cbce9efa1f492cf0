package stdlib

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerConversion(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "typeid", MinArgs: 1, MaxArgs: 1, Proc: egaTypeid, Help: "typeid(value)"})
	reg.Register(evaluator.Function{Name: "int", MinArgs: 1, MaxArgs: 1, Proc: egaInt, Help: "int(value)"})
	reg.Register(evaluator.Function{Name: "str", MinArgs: 1, MaxArgs: 1, Proc: egaStr, Help: "str(value)"})
	reg.Register(evaluator.Function{Name: "array", MinArgs: 0, MaxArgs: 256, Proc: egaArray, Help: "array(value1[, ...])"})
}

// egaTypeid returns the Kind ordinal (Int=0, Str=1, Array=2) of its
// argument, or -1 if the argument produced no value at all, rather than
// raising illegal_operation.
func egaTypeid(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	val, err := c.EvalArg(args[0], false)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return &ast.Int{LineNo: line, Value: -1}, nil
	}
	return &ast.Int{LineNo: line, Value: int(val.Kind())}, nil
}

func egaInt(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	val, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	switch v := val.(type) {
	case *ast.Int:
		return &ast.Int{LineNo: line, Value: v.Value}, nil
	case *ast.Str:
		return &ast.Int{LineNo: line, Value: atoi(v.Value)}, nil
	case *ast.Array:
		return &ast.Int{LineNo: line, Value: len(v.Elements)}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, line)
	}
}

// atoi mirrors C's std::atoi rather than strconv.Atoi: it skips leading
// whitespace, takes an optional sign, consumes the leading run of digits and
// stops at the first non-digit, yielding 0 when no digits are found at all
// rather than rejecting the whole string on trailing garbage.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f' || s[i] == '\v') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}

	if neg {
		return -n
	}
	return n
}

func egaStr(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	val, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	return &ast.Str{LineNo: line, Value: evaluator.Dump(val, false)}, nil
}

// egaArray evaluates every argument, eagerly, into the elements of a new
// array, much as evaluating an array literal does; registering it
// separately matches the original implementation's exposing both
// `{ ... }` and `array(...)` spellings.
func egaArray(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	elems := make([]ast.Node, len(args))
	for i, a := range args {
		val, err := c.Eval(a)
		if err != nil {
			return nil, err
		}
		elems[i] = val
	}
	return &ast.Array{LineNo: line, Elements: elems}, nil
}
