package stdlib

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerControl(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "if", MinArgs: 2, MaxArgs: 3, Proc: egaIf, Help: "if(cond, true_case[, false_case])"})
	reg.Register(evaluator.Function{Name: "?:", MinArgs: 2, MaxArgs: 3, Proc: egaIf, Help: "if(cond, true_case[, false_case])"})
	reg.Register(evaluator.Function{Name: "for", MinArgs: 4, MaxArgs: 4, Proc: egaFor, Help: "for(var, min, max, expr)"})
	reg.Register(evaluator.Function{Name: "foreach", MinArgs: 3, MaxArgs: 3, Proc: egaForeach, Help: "foreach(var, ary, expr)"})
	reg.Register(evaluator.Function{Name: "while", MinArgs: 2, MaxArgs: 2, Proc: egaWhile, Help: "while(cond, expr)"})
	reg.Register(evaluator.Function{Name: "do", MinArgs: 0, MaxArgs: 256, Proc: egaDo, Help: "do(expr, ...)"})
	reg.Register(evaluator.Function{Name: "exit", MinArgs: 0, MaxArgs: 1, Proc: egaExit, Help: "exit([value])"})
	reg.Register(evaluator.Function{Name: "break", MinArgs: 0, MaxArgs: 0, Proc: egaBreak, Help: "break()"})
}

func egaIf(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	cond, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	i, err := evaluator.GetInt(cond)
	if err != nil {
		return nil, err
	}
	if i != 0 {
		return c.EvalArg(args[1], false)
	}
	if len(args) == 3 {
		return c.EvalArg(args[2], false)
	}
	return nil, nil
}

func egaFor(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	v, err := evaluator.GetVar(args[0])
	if err != nil {
		return nil, err
	}
	lo, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	hi, err := c.EvalArg(args[2], true)
	if err != nil {
		return nil, err
	}
	loI, err := evaluator.GetInt(lo)
	if err != nil {
		return nil, err
	}
	hiI, err := evaluator.GetInt(hi)
	if err != nil {
		return nil, err
	}

	var result ast.Node
	for i := loI; i <= hiI; i++ {
		c.Env.Bind(v.Name, &ast.Int{LineNo: line, Value: i})
		val, err := c.EvalArg(args[3], false)
		if err != nil {
			if _, isBreak := err.(*evaluator.BreakError); isBreak {
				break
			}
			return nil, err
		}
		result = val
	}
	return result, nil
}

func egaForeach(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	v, err := evaluator.GetVar(args[0])
	if err != nil {
		return nil, err
	}
	arrNode, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	arr, err := evaluator.GetArray(arrNode)
	if err != nil {
		return nil, err
	}

	var result ast.Node
	for _, elem := range arr.Elements {
		c.Env.Bind(v.Name, elem)
		val, err := c.EvalArg(args[2], false)
		if err != nil {
			if _, isBreak := err.(*evaluator.BreakError); isBreak {
				break
			}
			return nil, err
		}
		result = val
	}
	return result, nil
}

func egaWhile(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	var result ast.Node
	for {
		cond, err := c.EvalArg(args[0], true)
		if err != nil {
			return nil, err
		}
		i, err := evaluator.GetInt(cond)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			break
		}
		val, err := c.EvalArg(args[1], false)
		if err != nil {
			if _, isBreak := err.(*evaluator.BreakError); isBreak {
				break
			}
			return nil, err
		}
		result = val
	}
	return result, nil
}

func egaDo(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	var result ast.Node
	for _, arg := range args {
		val, err := c.EvalArg(arg, false)
		if err != nil {
			if _, isBreak := err.(*evaluator.BreakError); isBreak {
				break
			}
			return nil, err
		}
		result = val
	}
	return result, nil
}

func egaExit(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	if len(args) == 1 {
		return nil, &evaluator.ExitError{Value: args[0]}
	}
	return nil, &evaluator.ExitError{}
}

func egaBreak(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	return nil, &evaluator.BreakError{}
}
