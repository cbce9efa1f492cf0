package evaluator

import "github.com/katayama-lang/ega/pkg/ast"

// ExitError unwinds evaluation all the way out to the text-evaluation
// boundary (ega.Interpreter.EvalTextEx), carrying the optional value `exit` was called with.
// It is not part of the diagnostics.Kind taxonomy because it is not a
// user-facing error: it is control flow, caught and consumed by the
// driver rather than printed as "ERROR: ...".
type ExitError struct {
	Value ast.Node // nil if exit() was called with no argument
}

func (e *ExitError) Error() string { return "exit exception" }

// BreakError unwinds to the nearest enclosing loop or `do`, which catches
// it and stops iterating. A BreakError that escapes every enclosing
// loop/do reaches the text-evaluation boundary uncaught and is reported
// like any other diagnostic ("ERROR: break exception").
type BreakError struct{}

func (e *BreakError) Error() string { return "break exception" }
