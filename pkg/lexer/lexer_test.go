package lexer_test

import (
	"testing"

	"github.com/katayama-lang/ega/pkg/lexer"
)

func tokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

func TestTokenizeIdentAndSymbols(t *testing.T) {
	toks := tokenize(t, "+ plus <= foo123")
	want := []string{"+", "plus", "<=", "foo123"}
	if len(toks)-1 != len(want) {
		t.Fatalf("got %d tokens (excluding EOF), want %d", len(toks)-1, len(want))
	}
	for i, w := range want {
		if toks[i].Str != w {
			t.Errorf("token %d: got %q, want %q", i, toks[i].Str, w)
		}
	}
}

func TestTokenizeInt(t *testing.T) {
	toks := tokenize(t, "42")
	if toks[0].Type != lexer.TokInt || toks[0].Int != 42 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeStringWithDoubledQuoteEscape(t *testing.T) {
	toks := tokenize(t, `"say ""hi"""`)
	if toks[0].Type != lexer.TokStr || toks[0].Str != `say "hi"` {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeUnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := lexer.Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestCommentRunsToEndOfLine(t *testing.T) {
	toks := tokenize(t, "1 @ a comment\n2")
	if toks[0].Int != 1 || toks[1].Int != 2 {
		t.Fatalf("got %+v", toks)
	}
}

func TestLineNumbersTrackNewlines(t *testing.T) {
	toks := tokenize(t, "1\n2\n3")
	for i, want := range []int{1, 2, 3} {
		if toks[i].Line != want {
			t.Errorf("token %d: got line %d, want %d", i, toks[i].Line, want)
		}
	}
}

func TestSymbols(t *testing.T) {
	toks := tokenize(t, "(),{};")
	for i, want := range []string{"(", ")", ",", "{", "}", ";"} {
		if toks[i].Str != want {
			t.Errorf("token %d: got %q, want %q", i, toks[i].Str, want)
		}
	}
}

func TestInvalidByteIsSyntaxError(t *testing.T) {
	_, err := lexer.Tokenize("#")
	if err == nil {
		t.Fatal("expected a syntax error on an unrecognized byte")
	}
}

func TestEmptySourceProducesOnlyEOF(t *testing.T) {
	toks := tokenize(t, "")
	if len(toks) != 1 || toks[0].Type != lexer.TokEOF {
		t.Fatalf("got %+v", toks)
	}
}
