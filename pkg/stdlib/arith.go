package stdlib

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerArithmetic(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "plus", MinArgs: 2, MaxArgs: 2, Proc: egaPlus, Help: "plus(int1, int2)"})
	reg.Register(evaluator.Function{Name: "+", MinArgs: 2, MaxArgs: 2, Proc: egaPlus, Help: "plus(int1, int2)"})
	reg.Register(evaluator.Function{Name: "minus", MinArgs: 1, MaxArgs: 2, Proc: egaMinus, Help: "minus(int1[, int2])"})
	reg.Register(evaluator.Function{Name: "-", MinArgs: 1, MaxArgs: 2, Proc: egaMinus, Help: "minus(int1[, int2])"})
	reg.Register(evaluator.Function{Name: "mul", MinArgs: 2, MaxArgs: 2, Proc: egaMul, Help: "mul(int1, int2)"})
	reg.Register(evaluator.Function{Name: "*", MinArgs: 2, MaxArgs: 2, Proc: egaMul, Help: "mul(int1, int2)"})
	reg.Register(evaluator.Function{Name: "div", MinArgs: 2, MaxArgs: 2, Proc: egaDiv, Help: "div(int1, int2)"})
	reg.Register(evaluator.Function{Name: "/", MinArgs: 2, MaxArgs: 2, Proc: egaDiv, Help: "div(int1, int2)"})
	reg.Register(evaluator.Function{Name: "mod", MinArgs: 2, MaxArgs: 2, Proc: egaMod, Help: "mod(int1, int2)"})
	reg.Register(evaluator.Function{Name: "%", MinArgs: 2, MaxArgs: 2, Proc: egaMod, Help: "mod(int1, int2)"})
}

func evalTwoInts(c *evaluator.Context, a1, a2 ast.Node) (int, int, error) {
	v1, err := c.EvalArg(a1, true)
	if err != nil {
		return 0, 0, err
	}
	v2, err := c.EvalArg(a2, true)
	if err != nil {
		return 0, 0, err
	}
	i1, err := evaluator.GetInt(v1)
	if err != nil {
		return 0, 0, err
	}
	i2, err := evaluator.GetInt(v2)
	if err != nil {
		return 0, 0, err
	}
	return i1, i2, nil
}

func egaPlus(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: i1 + i2}, nil
}

func egaMinus(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	if len(args) == 1 {
		v1, err := c.EvalArg(args[0], true)
		if err != nil {
			return nil, err
		}
		i1, err := evaluator.GetInt(v1)
		if err != nil {
			return nil, err
		}
		return &ast.Int{LineNo: line, Value: -i1}, nil
	}
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: i1 - i2}, nil
}

func egaMul(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: i1 * i2}, nil
}

// egaDiv and egaMod both raise illegal_operation on division by zero
// rather than letting Go's runtime panic escape the evaluator: Go defines
// integer division by zero as a fatal runtime error, unlike the original
// implementation's host-defined (and effectively undefined) behavior, so
// this is the one place EGA's own error taxonomy has to intervene before
// reaching the operator.
func egaDiv(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	if i2 == 0 {
		return nil, diagnostics.New(diagnostics.KindIllegal, line)
	}
	return &ast.Int{LineNo: line, Value: i1 / i2}, nil
}

func egaMod(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	if i2 == 0 {
		return nil, diagnostics.New(diagnostics.KindIllegal, line)
	}
	return &ast.Int{LineNo: line, Value: i1 % i2}, nil
}
