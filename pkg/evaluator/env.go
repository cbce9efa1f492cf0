package evaluator

import "github.com/katayama-lang/ega/pkg/ast"

// Env is EGA's variable store: a single flat map, never a parent-child
// chain. The language has no lexical scoping — every `set` and `define`
// mutates the same global table, and a function body sees whatever the
// caller last bound.
//
// The stored node has one of two shapes depending on which of `set` or
// `define` created it: `set` stores an already-evaluated value node, while
// `define` stores a cloned but unevaluated expression that is re-evaluated
// on every read. Evaluating a value node is the identity operation (it
// clones itself), so a single code path in Eval handles both.
type Env struct {
	vars map[string]ast.Node
}

func NewEnv() *Env {
	return &Env{vars: make(map[string]ast.Node)}
}

// Lookup returns the node bound to name, or (nil, false) if it was never
// set or has been unset.
func (e *Env) Lookup(name string) (ast.Node, bool) {
	n, ok := e.vars[name]
	return n, ok
}

// Bind stores n under name. Passing a nil n unsets the binding, mirroring
// `set(var)`/`define(var)` with no value argument.
func (e *Env) Bind(name string, n ast.Node) {
	if n == nil {
		delete(e.vars, name)
		return
	}
	e.vars[name] = n
}
