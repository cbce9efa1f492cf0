// Package ega is the embedding API: construct an Interpreter, optionally
// redirect its print/input hooks, and feed it source via EvalTextEx.
package ega

import (
	"strings"

	"github.com/katayama-lang/ega/pkg/diagnostics"
	"github.com/katayama-lang/ega/pkg/evaluator"
	"github.com/katayama-lang/ega/pkg/parser"
	"github.com/katayama-lang/ega/pkg/stdlib"
)

// Interpreter owns one EGA session: the global variable environment and the
// registered function table. A single global scope means a session's state
// persists across every EvalTextEx call, exactly as it does between lines
// typed at the interactive prompt.
type Interpreter struct {
	ctx   *evaluator.Context
	funcs *evaluator.Registry
}

// Option configures an Interpreter at construction time. Configure print and
// input hooks with Options before the first call to EvalTextEx; the hooks
// are fixed for the life of the session otherwise.
type Option func(*config)

type config struct {
	print evaluator.PrintFn
	input evaluator.InputFn
}

// WithPrintFn redirects every character EGA's print/println/dump/dumpln
// family produce, in place of the default (os.Stdout).
func WithPrintFn(fn func(string)) Option {
	return func(c *config) { c.print = fn }
}

// WithInputFn redirects `input()`, in place of the default (os.Stdin). fn
// returns the line read and whether one was available; false means EOF.
func WithInputFn(fn func(prompt string) (string, bool)) Option {
	return func(c *config) { c.input = fn }
}

// New builds an Interpreter with every built-in function registered and an
// empty global environment.
func New(opts ...Option) *Interpreter {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	funcs := evaluator.NewRegistry()
	stdlib.RegisterDefaults(funcs)

	env := evaluator.NewEnv()
	ctx := evaluator.NewContext(env, funcs, cfg.print, cfg.input)

	return &Interpreter{ctx: ctx, funcs: funcs}
}

// SetInteractive toggles whether error messages carry a trailing " at Line
// N" suffix: the driver sets this to true for the REPL and false (the
// default) for file execution, matching EGA_eval_text_ex's s_interactive
// flag.
func (in *Interpreter) SetInteractive(interactive bool) {
	in.ctx.Interactive = interactive
}

// FunctionNames returns every registered built-in name, in registration
// order — the order `help` sorts before listing.
func (in *Interpreter) FunctionNames() []string {
	return in.funcs.Names()
}

// Lookup returns the registered function named name, or nil.
func (in *Interpreter) Lookup(name string) *evaluator.Function {
	return in.funcs.Get(name)
}

// stripBOM drops a leading UTF-8 byte-order mark, the one byte-level quirk
// EGA_file_input checks for before handing source to the lexer.
func stripBOM(source string) string {
	const bom = "\xEF\xBB\xBF"
	if strings.HasPrefix(source, bom) {
		return source[len(bom):]
	}
	return source
}

// EvalTextEx parses and evaluates one chunk of source, mirroring
// EGA_eval_text_ex: a successfully evaluated program whose final statement
// produced a value has that value echoed in its quoted form followed by a
// newline (AstBase::print's behavior), exactly as a plain expression typed
// at the REPL echoes itself. Every error that reaches this boundary,
// including a `break` that escaped all loops, is formatted as "ERROR: ..."
// and printed rather than returned, matching the original boundary's
// behavior of swallowing every EGA exception.
//
// EvalTextEx returns true on normal completion, false if the program called
// `exit` — the signal the REPL driver uses to stop reading more input.
func (in *Interpreter) EvalTextEx(source string) bool {
	source = stripBOM(source)

	program, err := parser.Parse(source, in.funcs)
	if err != nil {
		in.printError(err)
		return true
	}

	result, err := in.ctx.Eval(program)
	if err != nil {
		if exit, ok := err.(*evaluator.ExitError); ok {
			if exit.Value != nil {
				if val, evalErr := in.ctx.Eval(exit.Value); evalErr == nil && val != nil {
					in.ctx.Print(evaluator.Dump(val, true))
					in.ctx.Print("\n")
				}
			}
			return false
		}
		in.printError(err)
		return true
	}

	if result != nil {
		in.ctx.Print(evaluator.Dump(result, true))
		in.ctx.Print("\n")
	}
	return true
}

func (in *Interpreter) printError(err error) {
	in.ctx.Print(diagnostics.Format(err, in.ctx.Interactive))
	in.ctx.Print("\n")
}
