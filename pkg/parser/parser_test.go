package parser_test

import (
	"testing"

	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/parser"
)

// stubRegistry lets tests declare exactly which identifiers are registered
// functions, the same binding-sensitivity the real evaluator.Registry gives
// the parser.
type stubRegistry map[string]bool

func (r stubRegistry) IsFunction(name string) bool { return r[name] }

func parse(t *testing.T, src string, fns stubRegistry) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, fns)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func TestParseIntLiteral(t *testing.T) {
	prog := parse(t, "42;", stubRegistry{})
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements", len(prog.Statements))
	}
	i, ok := prog.Statements[0].(*ast.Int)
	if !ok || i.Value != 42 {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestParseBareIdentIsVar(t *testing.T) {
	prog := parse(t, "x;", stubRegistry{})
	v, ok := prog.Statements[0].(*ast.Var)
	if !ok || v.Name != "x" {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestParseRegisteredIdentFollowedByParenIsCall(t *testing.T) {
	prog := parse(t, "plus(1, 2);", stubRegistry{"plus": true})
	call, ok := prog.Statements[0].(*ast.Call)
	if !ok || call.Name != "plus" || len(call.Args) != 2 {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestParseUnregisteredIdentFollowedByParenIsSyntaxError(t *testing.T) {
	_, err := parser.Parse("notafunc(1);", stubRegistry{})
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestParseParenthesizedGroupHasEmptyName(t *testing.T) {
	prog := parse(t, "(1, 2);", stubRegistry{})
	call, ok := prog.Statements[0].(*ast.Call)
	if !ok || call.Name != "" || len(call.Args) != 2 {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestParseArrayLiteral(t *testing.T) {
	prog := parse(t, `{ 1, "a", { 2 } };`, stubRegistry{})
	arr, ok := prog.Statements[0].(*ast.Array)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestParseEmptyArrayLiteral(t *testing.T) {
	prog := parse(t, `{};`, stubRegistry{})
	arr, ok := prog.Statements[0].(*ast.Array)
	if !ok || len(arr.Elements) != 0 {
		t.Fatalf("got %#v", prog.Statements[0])
	}
}

func TestParseMultipleStatements(t *testing.T) {
	prog := parse(t, "1; 2; 3", stubRegistry{})
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements", len(prog.Statements))
	}
}

func TestParseTrailingSemicolonBeforeEOFIsAccepted(t *testing.T) {
	prog := parse(t, "1;", stubRegistry{})
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements", len(prog.Statements))
	}
}

func TestParseUnclosedCallIsSyntaxError(t *testing.T) {
	_, err := parser.Parse("plus(1, 2", stubRegistry{"plus": true})
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestParseMissingCommaInCallIsSyntaxError(t *testing.T) {
	_, err := parser.Parse("plus(1 2)", stubRegistry{"plus": true})
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestParseVarFollowedByParenIsSyntaxError(t *testing.T) {
	// x is not a registered function, so x( is never a valid call — and a
	// bare identifier can never itself be followed directly by '('.
	_, err := parser.Parse("x()", stubRegistry{})
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestParseEmptyCallArgs(t *testing.T) {
	prog := parse(t, "now();", stubRegistry{"now": true})
	call := prog.Statements[0].(*ast.Call)
	if len(call.Args) != 0 {
		t.Fatalf("got %d args", len(call.Args))
	}
}
