// Package diagnostics defines EGA's closed error taxonomy. Every error the
// lexer, parser and evaluator can raise is one of the kinds below; each
// carries the source line it occurred on except where execution has no
// single line to blame.
package diagnostics

import "fmt"

// Kind identifies one of EGA's fixed error categories.
type Kind string

const (
	KindSyntax       Kind = "syntax_error"
	KindTypeMismatch Kind = "type_mismatch"
	KindUndefined    Kind = "undefined_variable"
	KindArgNumber    Kind = "argument_number_exception"
	KindIndexRange   Kind = "index_out_of_range"
	KindIllegal      Kind = "illegal_operation"
)

// messages mirrors the exact wording of the original implementation's
// exception classes, so `help`/error text matches what the language has
// always printed.
var messages = map[Kind]string{
	KindSyntax:       "syntax error",
	KindTypeMismatch: "type mismatch",
	KindArgNumber:    "argument number mismatch",
	KindIndexRange:   "index out of range",
	KindIllegal:      "illegal operation",
}

// Error is a diagnostic raised by the lexer, parser or evaluator. Line is 0
// when no source line is available.
type Error struct {
	Kind Kind
	Line int
	Name string // set only for KindUndefined
}

func New(kind Kind, line int) *Error {
	return &Error{Kind: kind, Line: line}
}

// Undefined builds the one error kind whose message carries extra data: the
// name of the variable that was never set or defined.
func Undefined(name string, line int) *Error {
	return &Error{Kind: KindUndefined, Line: line, Name: name}
}

func (e *Error) message() string {
	if e.Kind == KindUndefined {
		return fmt.Sprintf("undefined variable: '%s'", e.Name)
	}
	return messages[e.Kind]
}

func (e *Error) Error() string {
	return e.message()
}

// Format renders the error the way the interactive and file-execution
// drivers print it: "ERROR: <message>", with " at Line <n>" appended in
// file-execution mode when a line number is known. Interactive mode always
// omits the line suffix, matching the behavior of the line that was just
// typed at the prompt.
func Format(err error, interactive bool) string {
	e, ok := err.(*Error)
	if !ok {
		return "ERROR: " + err.Error()
	}
	if interactive || e.Line == 0 {
		return "ERROR: " + e.message()
	}
	return fmt.Sprintf("ERROR: %s at Line %d", e.message(), e.Line)
}
