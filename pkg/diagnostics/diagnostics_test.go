package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/katayama-lang/ega/pkg/diagnostics"
)

func TestFormatFileModeAppendsLine(t *testing.T) {
	err := diagnostics.New(diagnostics.KindTypeMismatch, 7)
	out := diagnostics.Format(err, false)
	if !strings.Contains(out, "type mismatch") || !strings.Contains(out, "Line 7") {
		t.Errorf("got %q", out)
	}
}

func TestFormatInteractiveOmitsLine(t *testing.T) {
	err := diagnostics.New(diagnostics.KindTypeMismatch, 7)
	out := diagnostics.Format(err, true)
	if strings.Contains(out, "Line") {
		t.Errorf("interactive mode should omit the line suffix, got %q", out)
	}
}

func TestFormatZeroLineOmitsSuffixEvenInFileMode(t *testing.T) {
	err := diagnostics.New(diagnostics.KindSyntax, 0)
	out := diagnostics.Format(err, false)
	if strings.Contains(out, "Line") {
		t.Errorf("got %q", out)
	}
}

func TestUndefinedCarriesName(t *testing.T) {
	err := diagnostics.Undefined("x", 3)
	if !strings.Contains(err.Error(), "'x'") {
		t.Errorf("got %q", err.Error())
	}
}
