package stdlib

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerLogic(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "not", MinArgs: 1, MaxArgs: 1, Proc: egaNot, Help: "not(value)"})
	reg.Register(evaluator.Function{Name: "!", MinArgs: 1, MaxArgs: 1, Proc: egaNot, Help: "not(value)"})
	reg.Register(evaluator.Function{Name: "or", MinArgs: 2, MaxArgs: 2, Proc: egaOr, Help: "or(value1, value2)"})
	reg.Register(evaluator.Function{Name: "||", MinArgs: 2, MaxArgs: 2, Proc: egaOr, Help: "or(value1, value2)"})
	reg.Register(evaluator.Function{Name: "and", MinArgs: 2, MaxArgs: 2, Proc: egaAnd, Help: "and(value1, value2)"})
	reg.Register(evaluator.Function{Name: "&&", MinArgs: 2, MaxArgs: 2, Proc: egaAnd, Help: "and(value1, value2)"})
	reg.Register(evaluator.Function{Name: "compl", MinArgs: 1, MaxArgs: 1, Proc: egaCompl, Help: "compl(value)"})
	reg.Register(evaluator.Function{Name: "~", MinArgs: 1, MaxArgs: 1, Proc: egaCompl, Help: "compl(value)"})
	reg.Register(evaluator.Function{Name: "bitor", MinArgs: 2, MaxArgs: 2, Proc: egaBitor, Help: "bitor(value1, value2)"})
	reg.Register(evaluator.Function{Name: "|", MinArgs: 2, MaxArgs: 2, Proc: egaBitor, Help: "bitor(value1, value2)"})
	reg.Register(evaluator.Function{Name: "bitand", MinArgs: 2, MaxArgs: 2, Proc: egaBitand, Help: "bitand(value1, value2)"})
	reg.Register(evaluator.Function{Name: "&", MinArgs: 2, MaxArgs: 2, Proc: egaBitand, Help: "bitand(value1, value2)"})
	reg.Register(evaluator.Function{Name: "xor", MinArgs: 2, MaxArgs: 2, Proc: egaXor, Help: "xor(value1, value2)"})
	reg.Register(evaluator.Function{Name: "^", MinArgs: 2, MaxArgs: 2, Proc: egaXor, Help: "xor(value1, value2)"})
}

func egaNot(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	v, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	i, err := evaluator.GetInt(v)
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(i == 0)}, nil
}

func egaOr(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(i1 != 0 || i2 != 0)}, nil
}

func egaAnd(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: boolInt(i1 != 0 && i2 != 0)}, nil
}

func egaCompl(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	v, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	i, err := evaluator.GetInt(v)
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: ^i}, nil
}

func egaBitor(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: i1 | i2}, nil
}

func egaBitand(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: i1 & i2}, nil
}

func egaXor(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	i1, i2, err := evalTwoInts(c, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Int{LineNo: line, Value: i1 ^ i2}, nil
}
