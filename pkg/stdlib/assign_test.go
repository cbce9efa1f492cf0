package stdlib_test

import "testing"

func TestSetStoresEagerValue(t *testing.T) {
	n, err := run(t, "do(set(x, 5), x);")
	wantInt(t, n, err, 5)
}

func TestSetWithNoValueUnsetsVariable(t *testing.T) {
	_, err := run(t, "do(set(x, 5), set(x), x);")
	if err == nil {
		t.Fatal("expected undefined_variable after set(x) with no value")
	}
}

func TestSetDoesNotReEvaluateOnRead(t *testing.T) {
	// y changing after x is set must not affect x: set evaluates eagerly.
	n, err := run(t, "do(set(y, 1), set(x, y), set(y, 2), x);")
	wantInt(t, n, err, 1)
}

func TestDefineReEvaluatesOnEveryRead(t *testing.T) {
	// x is bound to the unevaluated expression plus(y, 1); each read of x
	// recomputes it against y's current value.
	n, err := run(t, "do(set(y, 1), define(x, plus(y, 1)), set(y, 10), x);")
	wantInt(t, n, err, 11)
}

func TestDefineWithNoExprUnsets(t *testing.T) {
	_, err := run(t, "do(define(x, 1), define(x), x);")
	if err == nil {
		t.Fatal("expected undefined_variable after define(x) with no expr")
	}
}

func TestAssignmentOperatorAliases(t *testing.T) {
	n, err := run(t, "do(=(x, 3), x);")
	wantInt(t, n, err, 3)
}
