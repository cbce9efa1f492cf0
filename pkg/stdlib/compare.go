package stdlib

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerComparison(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "equal", MinArgs: 2, MaxArgs: 2, Proc: egaEqual, Help: "equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: "==", MinArgs: 2, MaxArgs: 2, Proc: egaEqual, Help: "equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: "not_equal", MinArgs: 2, MaxArgs: 2, Proc: egaNotEqual, Help: "not_equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: "!=", MinArgs: 2, MaxArgs: 2, Proc: egaNotEqual, Help: "not_equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: "compare", MinArgs: 2, MaxArgs: 2, Proc: egaCompare, Help: "compare(value1, value2)"})
	reg.Register(evaluator.Function{Name: "less", MinArgs: 2, MaxArgs: 2, Proc: egaLess, Help: "less(value1, value2)"})
	reg.Register(evaluator.Function{Name: "<", MinArgs: 2, MaxArgs: 2, Proc: egaLess, Help: "less(value1, value2)"})
	reg.Register(evaluator.Function{Name: "less_equal", MinArgs: 2, MaxArgs: 2, Proc: egaLessEqual, Help: "less_equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: "<=", MinArgs: 2, MaxArgs: 2, Proc: egaLessEqual, Help: "less_equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: "greater", MinArgs: 2, MaxArgs: 2, Proc: egaGreater, Help: "greater(value1, value2)"})
	reg.Register(evaluator.Function{Name: ">", MinArgs: 2, MaxArgs: 2, Proc: egaGreater, Help: "greater(value1, value2)"})
	reg.Register(evaluator.Function{Name: "greater_equal", MinArgs: 2, MaxArgs: 2, Proc: egaGreaterEqual, Help: "greater_equal(value1, value2)"})
	reg.Register(evaluator.Function{Name: ">=", MinArgs: 2, MaxArgs: 2, Proc: egaGreaterEqual, Help: "greater_equal(value1, value2)"})
}

// compare0 evaluates both arguments and orders them by Kind first
// (Int < Str < Array), then by value, recursing element-wise into arrays.
func compare0(c *evaluator.Context, a1, a2 ast.Node) (int, error) {
	v1, err := c.EvalArg(a1, true)
	if err != nil {
		return 0, err
	}
	v2, err := c.EvalArg(a2, true)
	if err != nil {
		return 0, err
	}
	n, ok := ast.Compare(v1, v2)
	if !ok {
		return 0, diagnostics.New(diagnostics.KindTypeMismatch, a1.Line())
	}
	return n, nil
}

func egaCompare(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: n}, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func egaLess(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(n < 0)}, nil
}

func egaGreater(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(n > 0)}, nil
}

func egaLessEqual(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(n <= 0)}, nil
}

func egaGreaterEqual(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(n >= 0)}, nil
}

func egaEqual(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(n == 0)}, nil
}

func egaNotEqual(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	n, err := compare0(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(n != 0)}, nil
}
