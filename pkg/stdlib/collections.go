package stdlib

import (
	"strings"

	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/evaluator"
)

func registerCollections(reg *evaluator.Registry) {
	reg.Register(evaluator.Function{Name: "len", MinArgs: 1, MaxArgs: 1, Proc: egaLen, Help: "len(ary_or_str)"})
	reg.Register(evaluator.Function{Name: "cat", MinArgs: 1, MaxArgs: 256, Proc: egaCat, Help: "cat(ary_or_str_1, ary_or_str_2, ...)"})
	reg.Register(evaluator.Function{Name: "[]", MinArgs: 2, MaxArgs: 3, Proc: egaAt, Help: "at(ary_or_str, index[, value])"})
	reg.Register(evaluator.Function{Name: "at", MinArgs: 2, MaxArgs: 3, Proc: egaAt, Help: "at(ary_or_str, index[, value])"})
	reg.Register(evaluator.Function{Name: "left", MinArgs: 2, MaxArgs: 2, Proc: egaLeft, Help: "left(ary_or_str, count)"})
	reg.Register(evaluator.Function{Name: "right", MinArgs: 2, MaxArgs: 2, Proc: egaRight, Help: "right(ary_or_str, count)"})
	reg.Register(evaluator.Function{Name: "mid", MinArgs: 3, MaxArgs: 4, Proc: egaMid, Help: "mid(ary_or_str, index, count[, value])"})
	reg.Register(evaluator.Function{Name: "find", MinArgs: 2, MaxArgs: 2, Proc: egaFind, Help: "find(ary_or_str, target)"})
	reg.Register(evaluator.Function{Name: "replace", MinArgs: 3, MaxArgs: 3, Proc: egaReplace, Help: "replace(ary_or_str, from, to)"})
	reg.Register(evaluator.Function{Name: "remove", MinArgs: 2, MaxArgs: 2, Proc: egaRemove, Help: "remove(ary_or_str, target)"})
}

func egaLen(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	val, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	switch v := val.(type) {
	case *ast.Str:
		return &ast.Int{LineNo: line, Value: len(v.Value)}, nil
	case *ast.Array:
		return &ast.Int{LineNo: line, Value: len(v.Elements)}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaCat(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	first, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	switch first.(type) {
	case *ast.Str:
		s, _ := evaluator.GetStr(first)
		var buf strings.Builder
		buf.WriteString(s)
		for _, a := range args[1:] {
			v, err := c.EvalArg(a, true)
			if err != nil {
				return nil, err
			}
			part, err := evaluator.GetStr(v)
			if err != nil {
				return nil, err
			}
			buf.WriteString(part)
		}
		return &ast.Str{LineNo: line, Value: buf.String()}, nil

	case *ast.Array:
		var elems []ast.Node
		for _, a := range args {
			v, err := c.EvalArg(a, true)
			if err != nil {
				return nil, err
			}
			arr, err := evaluator.GetArray(v)
			if err != nil {
				return nil, err
			}
			elems = append(elems, arr.Elements...)
		}
		return &ast.Array{LineNo: line, Elements: elems}, nil

	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaAt(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	idxVal, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	index, err := evaluator.GetInt(idxVal)
	if err != nil {
		return nil, err
	}

	if len(args) == 2 {
		switch v := target.(type) {
		case *ast.Array:
			if index < 0 || index >= len(v.Elements) {
				return nil, diagnostics.New(diagnostics.KindIndexRange, args[0].Line())
			}
			return v.Elements[index], nil
		case *ast.Str:
			if index < 0 || index >= len(v.Value) {
				return nil, diagnostics.New(diagnostics.KindIndexRange, args[0].Line())
			}
			return &ast.Int{LineNo: line, Value: int(v.Value[index])}, nil
		default:
			return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
		}
	}

	varNode, err := evaluator.GetVar(args[0])
	if err != nil {
		return nil, err
	}
	newVal, err := c.EvalArg(args[2], true)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Array:
		if index < 0 || index >= len(v.Elements) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[0].Line())
		}
		v.Elements[index] = newVal
		c.Env.Bind(varNode.Name, v)
		return v, nil
	case *ast.Str:
		if index < 0 || index >= len(v.Value) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[0].Line())
		}
		b, err := evaluator.GetInt(newVal)
		if err != nil {
			return nil, err
		}
		buf := []byte(v.Value)
		buf[index] = byte(b)
		updated := &ast.Str{LineNo: line, Value: string(buf)}
		c.Env.Bind(varNode.Name, updated)
		return updated, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaLeft(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	countVal, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	n, err := evaluator.GetInt(countVal)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Str:
		if n < 0 || n > len(v.Value) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
		}
		return &ast.Str{LineNo: line, Value: v.Value[:n]}, nil
	case *ast.Array:
		if n < 0 || n > len(v.Elements) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
		}
		return &ast.Array{LineNo: line, Elements: cloneSlice(v.Elements[:n])}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaRight(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	countVal, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	n, err := evaluator.GetInt(countVal)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Str:
		if n < 0 || n > len(v.Value) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
		}
		return &ast.Str{LineNo: line, Value: v.Value[len(v.Value)-n:]}, nil
	case *ast.Array:
		if n < 0 || n > len(v.Elements) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
		}
		return &ast.Array{LineNo: line, Elements: cloneSlice(v.Elements[len(v.Elements)-n:])}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaMid(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	idxVal, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	cntVal, err := c.EvalArg(args[2], true)
	if err != nil {
		return nil, err
	}
	index, err := evaluator.GetInt(idxVal)
	if err != nil {
		return nil, err
	}
	count, err := evaluator.GetInt(cntVal)
	if err != nil {
		return nil, err
	}

	if len(args) == 3 {
		switch v := target.(type) {
		case *ast.Str:
			if index < 0 || count < 0 || index+count > len(v.Value) {
				return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
			}
			return &ast.Str{LineNo: line, Value: v.Value[index : index+count]}, nil
		case *ast.Array:
			if index < 0 || count < 0 || index+count > len(v.Elements) {
				return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
			}
			return &ast.Array{LineNo: line, Elements: cloneSlice(v.Elements[index : index+count])}, nil
		default:
			return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
		}
	}

	replVal, err := c.EvalArg(args[3], true)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Str:
		if index < 0 || count < 0 || index+count > len(v.Value) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
		}
		repl, err := evaluator.GetStr(replVal)
		if err != nil {
			return nil, err
		}
		return &ast.Str{LineNo: line, Value: v.Value[:index] + repl + v.Value[index+count:]}, nil
	case *ast.Array:
		if index < 0 || count < 0 || index+count > len(v.Elements) {
			return nil, diagnostics.New(diagnostics.KindIndexRange, args[1].Line())
		}
		var elems []ast.Node
		elems = append(elems, cloneSlice(v.Elements[:index])...)
		elems = append(elems, replVal)
		elems = append(elems, cloneSlice(v.Elements[index+count:])...)
		return &ast.Array{LineNo: line, Elements: elems}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaFind(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	needle, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Str:
		needleStr, err := evaluator.GetStr(needle)
		if err != nil {
			return nil, err
		}
		return &ast.Int{LineNo: line, Value: strings.Index(v.Value, needleStr)}, nil
	case *ast.Array:
		for i, elem := range v.Elements {
			n, ok := ast.Compare(elem, needle)
			if ok && n == 0 {
				return &ast.Int{LineNo: line, Value: i}, nil
			}
		}
		return &ast.Int{LineNo: line, Value: -1}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaReplace(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	from, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}
	to, err := c.EvalArg(args[2], true)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Str:
		fromStr, err := evaluator.GetStr(from)
		if err != nil {
			return nil, err
		}
		toStr, err := evaluator.GetStr(to)
		if err != nil {
			return nil, err
		}
		return &ast.Str{LineNo: line, Value: strings.ReplaceAll(v.Value, fromStr, toStr)}, nil
	case *ast.Array:
		elems := make([]ast.Node, 0, len(v.Elements))
		for _, elem := range v.Elements {
			n, ok := ast.Compare(elem, from)
			if ok && n == 0 {
				elems = append(elems, to.Clone())
			} else {
				elems = append(elems, elem)
			}
		}
		return &ast.Array{LineNo: line, Elements: elems}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func egaRemove(c *evaluator.Context, args []ast.Node, line int) (ast.Node, error) {
	target, err := c.EvalArg(args[0], true)
	if err != nil {
		return nil, err
	}
	needle, err := c.EvalArg(args[1], true)
	if err != nil {
		return nil, err
	}

	switch v := target.(type) {
	case *ast.Str:
		needleStr, err := evaluator.GetStr(needle)
		if err != nil {
			return nil, err
		}
		return &ast.Str{LineNo: line, Value: strings.ReplaceAll(v.Value, needleStr, "")}, nil
	case *ast.Array:
		elems := make([]ast.Node, 0, len(v.Elements))
		for _, elem := range v.Elements {
			n, ok := ast.Compare(elem, needle)
			if !(ok && n == 0) {
				elems = append(elems, elem)
			}
		}
		return &ast.Array{LineNo: line, Elements: elems}, nil
	default:
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, args[0].Line())
	}
}

func cloneSlice(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
