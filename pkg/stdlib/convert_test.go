package stdlib_test

import (
	"testing"

	"github.com/katayama-lang/ega/pkg/ast"
)

func TestTypeidInt(t *testing.T) {
	n, err := run(t, "typeid(1);")
	wantInt(t, n, err, 0)
}

func TestTypeidStr(t *testing.T) {
	n, err := run(t, `typeid("x");`)
	wantInt(t, n, err, 1)
}

func TestTypeidArray(t *testing.T) {
	n, err := run(t, "typeid({1});")
	wantInt(t, n, err, 2)
}

func TestTypeidNoValueIsMinusOne(t *testing.T) {
	n, err := run(t, "typeid(print());")
	wantInt(t, n, err, -1)
}

func TestIntFromStr(t *testing.T) {
	n, err := run(t, `int("42");`)
	wantInt(t, n, err, 42)
}

func TestIntFromArrayIsLength(t *testing.T) {
	n, err := run(t, "int({1, 2, 3});")
	wantInt(t, n, err, 3)
}

// TestIntFromStrParsesLeadingDigitsOnly matches atoi, not strconv.Atoi:
// trailing non-digit garbage is dropped rather than making the whole
// conversion fail.
func TestIntFromStrParsesLeadingDigitsOnly(t *testing.T) {
	n, err := run(t, `int("123abc");`)
	wantInt(t, n, err, 123)
}

func TestIntFromStrSkipsLeadingWhitespace(t *testing.T) {
	n, err := run(t, `int("  42");`)
	wantInt(t, n, err, 42)
}

func TestIntFromStrHandlesSign(t *testing.T) {
	n, err := run(t, `int("-7");`)
	wantInt(t, n, err, -7)
}

func TestIntFromStrWithNoDigitsIsZero(t *testing.T) {
	n, err := run(t, `int("abc");`)
	wantInt(t, n, err, 0)
}

func TestStrFromInt(t *testing.T) {
	n, err := run(t, "str(42);")
	wantStr(t, n, err, "42")
}

func TestArrayBuildsFromArgs(t *testing.T) {
	n, err := run(t, `array(1, "a");`)
	if err != nil {
		t.Fatal(err)
	}
	arr := n.(*ast.Array)
	if len(arr.Elements) != 2 {
		t.Fatalf("got %d elements", len(arr.Elements))
	}
}
