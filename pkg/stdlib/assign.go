package stdlib

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerAssignment(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "set", MinArgs: 1, MaxArgs: 2, Proc: egaSet, Help: "set(var[, value])"})
	reg.Register(evaluator.Function{Name: "=", MinArgs: 1, MaxArgs: 2, Proc: egaSet, Help: "set(var[, value])"})
	reg.Register(evaluator.Function{Name: "define", MinArgs: 1, MaxArgs: 2, Proc: egaDefine, Help: "define(var[, expr])"})
	reg.Register(evaluator.Function{Name: ":=", MinArgs: 1, MaxArgs: 2, Proc: egaDefine, Help: "define(var[, expr])"})
}

// egaSet evaluates its second argument once, eagerly, and stores the
// resulting value. Reading the variable back never re-runs the expression.
func egaSet(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	v, err := evaluator.GetVar(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		c.Env.Bind(v.Name, nil)
		return nil, nil
	}
	val, err := c.Eval(args[1])
	if err != nil {
		return nil, err
	}
	c.Env.Bind(v.Name, val)
	return val, nil
}

// egaDefine stores a clone of its second argument without evaluating it.
// Every later read of the variable re-evaluates the stored expression from
// scratch, which is how EGA gets lazily-recomputed bindings.
func egaDefine(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	v, err := evaluator.GetVar(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		c.Env.Bind(v.Name, nil)
		return nil, nil
	}
	expr := args[1].Clone()
	c.Env.Bind(v.Name, expr)
	return expr, nil
}
