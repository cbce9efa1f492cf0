package ast_test

import (
	"testing"

	"github.com/katayama-lang/ega/pkg/ast"
)

func TestKindOrdering(t *testing.T) {
	if !(ast.KindInt < ast.KindStr && ast.KindStr < ast.KindArray) {
		t.Fatal("expected KindInt < KindStr < KindArray")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &ast.Array{Elements: []ast.Node{&ast.Int{Value: 1}, &ast.Str{Value: "a"}}}
	clone := orig.Clone().(*ast.Array)

	clone.Elements[0].(*ast.Int).Value = 99
	if orig.Elements[0].(*ast.Int).Value != 1 {
		t.Fatal("mutating the clone mutated the original")
	}
}

func TestCompareByKindFirst(t *testing.T) {
	n, ok := ast.Compare(&ast.Int{Value: 100}, &ast.Str{Value: "a"})
	if !ok || n != -1 {
		t.Fatalf("Int vs Str: got (%d, %v), want (-1, true)", n, ok)
	}
}

func TestCompareInts(t *testing.T) {
	cases := []struct {
		a, b int
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{2, 2, 0},
	}
	for _, c := range cases {
		n, ok := ast.Compare(&ast.Int{Value: c.a}, &ast.Int{Value: c.b})
		if !ok || n != c.want {
			t.Errorf("Compare(%d, %d): got (%d, %v), want (%d, true)", c.a, c.b, n, ok, c.want)
		}
	}
}

func TestCompareArraysLexicographic(t *testing.T) {
	a := &ast.Array{Elements: []ast.Node{&ast.Int{Value: 1}, &ast.Int{Value: 2}}}
	b := &ast.Array{Elements: []ast.Node{&ast.Int{Value: 1}, &ast.Int{Value: 3}}}
	n, ok := ast.Compare(a, b)
	if !ok || n != -1 {
		t.Fatalf("got (%d, %v), want (-1, true)", n, ok)
	}
}

func TestCompareArraysDifferentLength(t *testing.T) {
	short := &ast.Array{Elements: []ast.Node{&ast.Int{Value: 1}}}
	long := &ast.Array{Elements: []ast.Node{&ast.Int{Value: 1}, &ast.Int{Value: 2}}}
	n, ok := ast.Compare(short, long)
	if !ok || n != -1 {
		t.Fatalf("got (%d, %v), want (-1, true)", n, ok)
	}
}

func TestIsValue(t *testing.T) {
	values := []ast.Node{&ast.Int{}, &ast.Str{}, &ast.Array{}}
	for _, v := range values {
		if !ast.IsValue(v) {
			t.Errorf("%T should be a value", v)
		}
	}
	nonValues := []ast.Node{&ast.Var{}, &ast.Call{}, &ast.Program{}}
	for _, v := range nonValues {
		if ast.IsValue(v) {
			t.Errorf("%T should not be a value", v)
		}
	}
}
