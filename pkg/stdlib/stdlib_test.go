package stdlib_test

import (
	"testing"

	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/evaluator"
	"github.com/katayama-lang/ega/pkg/parser"
	"github.com/katayama-lang/ega/pkg/stdlib"
)

// newInterp builds a fresh registry/env/context wired with every built-in,
// the same way the top-level ega package does.
func newInterp() (*evaluator.Registry, *evaluator.Context) {
	reg := evaluator.NewRegistry()
	stdlib.RegisterDefaults(reg)
	ctx := evaluator.NewContext(evaluator.NewEnv(), reg, func(string) {}, nil)
	return reg, ctx
}

// run parses and evaluates src against a fresh interpreter, returning the
// final value (possibly nil) and any error.
func run(t *testing.T, src string) (ast.Node, error) {
	t.Helper()
	reg, ctx := newInterp()
	prog, err := parser.Parse(src, reg)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(prog)
}

// runWithIO is like run but lets the test observe print output and supply
// canned input lines.
func runWithIO(t *testing.T, src string, input func(prompt string) (string, bool)) (ast.Node, error, string) {
	t.Helper()
	reg := evaluator.NewRegistry()
	stdlib.RegisterDefaults(reg)
	var out string
	ctx := evaluator.NewContext(evaluator.NewEnv(), reg, func(s string) { out += s }, input)
	prog, err := parser.Parse(src, reg)
	if err != nil {
		return nil, err, out
	}
	v, err := ctx.Eval(prog)
	return v, err, out
}

func wantInt(t *testing.T, n ast.Node, err error, want int) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := n.(*ast.Int)
	if !ok {
		t.Fatalf("got %#v, want Int", n)
	}
	if i.Value != want {
		t.Fatalf("got %d, want %d", i.Value, want)
	}
}

func wantStr(t *testing.T, n ast.Node, err error, want string) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := n.(*ast.Str)
	if !ok {
		t.Fatalf("got %#v, want Str", n)
	}
	if s.Value != want {
		t.Fatalf("got %q, want %q", s.Value, want)
	}
}

func wantKind(t *testing.T, err error, kind diagnostics.Kind) {
	t.Helper()
	d, ok := err.(*diagnostics.Error)
	if !ok {
		t.Fatalf("got %v, want a diagnostics.Error of kind %s", err, kind)
	}
	if d.Kind != kind {
		t.Fatalf("got kind %s, want %s", d.Kind, kind)
	}
}
