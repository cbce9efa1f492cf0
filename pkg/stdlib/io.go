package stdlib

import (
	"strings"

	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerIO(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "print", MinArgs: 0, MaxArgs: 256, Proc: egaPrint, Help: "print(value, ...)"})
	reg.Register(evaluator.Function{Name: "println", MinArgs: 0, MaxArgs: 256, Proc: egaPrintln, Help: "println(value, ...)"})
	reg.Register(evaluator.Function{Name: "dump", MinArgs: 0, MaxArgs: 256, Proc: egaDump, Help: "dump(value, ...)"})
	reg.Register(evaluator.Function{Name: "dumpln", MinArgs: 0, MaxArgs: 256, Proc: egaDumpln, Help: "dumpln(value, ...)"})
	reg.Register(evaluator.Function{Name: "?", MinArgs: 0, MaxArgs: 256, Proc: egaDumpln, Help: "dumpln(value, ...)"})
	reg.Register(evaluator.Function{Name: "input", MinArgs: 0, MaxArgs: 1, Proc: egaInput, Help: "input([message])"})
}

func egaPrint(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	for _, a := range args {
		val, err := c.EvalArg(a, false)
		if err != nil {
			return nil, err
		}
		if val != nil {
			c.Print(evaluator.Dump(val, false))
		}
	}
	return nil, nil
}

func egaPrintln(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	if _, err := egaPrint(c, args, line); err != nil {
		return nil, err
	}
	c.Print("\n")
	return nil, nil
}

func egaDump(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	for _, a := range args {
		val, err := c.EvalArg(a, true)
		if err != nil {
			return nil, err
		}
		c.Print(evaluator.Dump(val, true))
	}
	return nil, nil
}

func egaDumpln(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	if _, err := egaDump(c, args, line); err != nil {
		return nil, err
	}
	c.Print("\n")
	return nil, nil
}

// egaInput reads one line via the embedder's InputFn, printing a prompt
// first: the evaluated first argument followed by "? " when given, or a
// bare "? " otherwise. Surrounding whitespace and `;` are trimmed,
// matching the original's mstr_trim behavior — a line like `42;` typed at
// an `input()` prompt is read as `42`, not `42;`.
func egaInput(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	prompt := "? "
	if len(args) == 1 {
		val, err := c.EvalArg(args[0], true)
		if err != nil {
			return nil, err
		}
		s, err := evaluator.GetStr(val)
		if err != nil {
			return nil, err
		}
		prompt = s + "? "
	}

	text, ok := c.Input(prompt)
	if !ok {
		return nil, nil
	}
	return &ast.Str{LineNo: line, Value: strings.Trim(text, " \t\r\n\f\v;")}, nil
}
