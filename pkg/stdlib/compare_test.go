package stdlib_test

import "testing"

func TestCompareInts(t *testing.T) {
	n, err := run(t, "compare(1, 2);")
	wantInt(t, n, err, -1)
	n, err = run(t, "compare(2, 1);")
	wantInt(t, n, err, 1)
	n, err = run(t, "compare(1, 1);")
	wantInt(t, n, err, 0)
}

func TestLessGreater(t *testing.T) {
	n, err := run(t, "less(1, 2);")
	wantInt(t, n, err, 1)
	n, err = run(t, "greater(1, 2);")
	wantInt(t, n, err, 0)
}

func TestLessEqualGreaterEqual(t *testing.T) {
	n, err := run(t, "less_equal(2, 2);")
	wantInt(t, n, err, 1)
	n, err = run(t, "greater_equal(2, 2);")
	wantInt(t, n, err, 1)
}

func TestEqualNotEqual(t *testing.T) {
	n, err := run(t, `equal("a", "a");`)
	wantInt(t, n, err, 1)
	n, err = run(t, `not_equal("a", "b");`)
	wantInt(t, n, err, 1)
}

// TestCompareOrdersByKindFirst documents that cross-kind comparison is a
// well-defined total order (Int < Str < Array), not a type_mismatch — the
// same ordering ast.Compare itself implements.
func TestCompareOrdersByKindFirst(t *testing.T) {
	n, err := run(t, `compare(1, "a");`)
	wantInt(t, n, err, -1)
	n, err = run(t, `compare({1}, "a");`)
	wantInt(t, n, err, 1)
}

func TestCompareArraysLexicographic(t *testing.T) {
	n, err := run(t, "less({1, 2}, {1, 3});")
	wantInt(t, n, err, 1)
}

func TestOperatorAliases(t *testing.T) {
	n, err := run(t, "<(1, 2);")
	wantInt(t, n, err, 1)
	n, err = run(t, "==(1, 1);")
	wantInt(t, n, err, 1)
}
