package evaluator

import (
	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
)

// Eval reduces n to a fully evaluated value node (Int, Str or Array), or
// returns nil if n produced no value at all (e.g. `set(x)` with no second
// argument, or `print(...)`, which exist only for their side effects).
func (c *Context) Eval(n ast.Node) (ast.Node, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxDepth {
		return nil, diagnostics.New(diagnostics.KindIllegal, n.Line())
	}

	switch v := n.(type) {
	case *ast.Int:
		return v.Clone(), nil

	case *ast.Str:
		return v.Clone(), nil

	case *ast.Array:
		elems := make([]ast.Node, len(v.Elements))
		for i, e := range v.Elements {
			val, err := c.EvalArg(e, true)
			if err != nil {
				return nil, err
			}
			elems[i] = val
		}
		return &ast.Array{LineNo: v.LineNo, Elements: elems}, nil

	case *ast.Var:
		bound, ok := c.Env.Lookup(v.Name)
		if !ok {
			return nil, diagnostics.Undefined(v.Name, v.LineNo)
		}
		return c.Eval(bound)

	case *ast.Call:
		return c.evalCall(v)

	case *ast.Program:
		return c.evalStatements(v.Statements)

	default:
		return nil, diagnostics.New(diagnostics.KindSyntax, n.Line())
	}
}

func (c *Context) evalCall(call *ast.Call) (ast.Node, error) {
	if call.Name == "" {
		return c.evalStatements(call.Args)
	}

	fn := c.Funcs.Get(call.Name)
	if fn == nil {
		return nil, diagnostics.New(diagnostics.KindSyntax, call.LineNo)
	}
	if len(call.Args) < fn.MinArgs || len(call.Args) > fn.MaxArgs {
		return nil, diagnostics.New(diagnostics.KindArgNumber, call.LineNo)
	}
	return fn.Proc(c, call.Args, call.LineNo)
}

// evalStatements implements both Program and the empty-name "grouping"
// call: evaluate every statement in order, returning whatever the last
// one produced (which may be nil).
func (c *Context) evalStatements(stmts []ast.Node) (ast.Node, error) {
	var result ast.Node
	for _, stmt := range stmts {
		val, err := c.Eval(stmt)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

// EvalArg evaluates n and, when require is true, turns a no-value result
// into an illegal_operation error. This is the one helper nearly every
// built-in funnels its argument evaluation through, matching EGA_eval_arg.
func (c *Context) EvalArg(n ast.Node, require bool) (ast.Node, error) {
	val, err := c.Eval(n)
	if err != nil {
		return nil, err
	}
	if val == nil && require {
		return nil, diagnostics.New(diagnostics.KindIllegal, n.Line())
	}
	return val, nil
}
