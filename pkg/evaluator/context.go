package evaluator

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/katayama-lang/ega/pkg/ast"
	"github.com/katayama-lang/ega/pkg/diagnostics"
)

// maxDepth bounds Eval's recursion depth. EGA programs can recurse
// without bound through a `define`d variable whose stored expression
// reads that same variable; without a guard a runaway program would
// exhaust the Go stack and crash the host process instead of reporting an
// evaluator error.
const maxDepth = 20000

// PrintFn is called for every character EGA's print/println/dump/dumpln
// family produce. The default writes to os.Stdout.
type PrintFn func(s string)

// InputFn is called by `input`; it returns the line read and whether a
// line was available at all (false means EOF, mirroring EGA_do_input's
// fgets-failed case).
type InputFn func(prompt string) (string, bool)

// Context carries everything a built-in Proc needs to evaluate its
// arguments and perform I/O: the variable environment, the function
// registry (so a built-in can recurse back into Eval), and the pluggable
// print/input hooks.
type Context struct {
	Env     *Env
	Funcs   *Registry
	PrintFn PrintFn
	InputFn InputFn

	// Interactive, when true, suppresses the " at Line N" suffix on error
	// messages, matching the original REPL's behavior of reporting the
	// bare message for whatever was just typed.
	Interactive bool

	depth int
}

// NewContext builds a Context with the given environment and registry.
// Nil PrintFn/InputFn fall back to stdout and stdin.
func NewContext(env *Env, funcs *Registry, print PrintFn, input InputFn) *Context {
	if print == nil {
		print = func(s string) { fmt.Fprint(os.Stdout, s) }
	}
	if input == nil {
		reader := bufio.NewReader(os.Stdin)
		input = func(prompt string) (string, bool) {
			fmt.Fprint(os.Stdout, prompt)
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return "", false
			}
			return strings.TrimRight(line, " \t\r\n\f\v;"), true
		}
	}
	return &Context{Env: env, Funcs: funcs, PrintFn: print, InputFn: input}
}

func (c *Context) Print(s string) { c.PrintFn(s) }

func (c *Context) Input(prompt string) (string, bool) { return c.InputFn(prompt) }

// GetInt requires n to be an Int, raising type_mismatch otherwise.
func GetInt(n ast.Node) (int, error) {
	i, ok := n.(*ast.Int)
	if !ok {
		return 0, diagnostics.New(diagnostics.KindTypeMismatch, n.Line())
	}
	return i.Value, nil
}

// GetStr requires n to be a Str, raising type_mismatch otherwise.
func GetStr(n ast.Node) (string, error) {
	s, ok := n.(*ast.Str)
	if !ok {
		return "", diagnostics.New(diagnostics.KindTypeMismatch, n.Line())
	}
	return s.Value, nil
}

// GetArray requires n to be an Array, raising type_mismatch otherwise.
func GetArray(n ast.Node) (*ast.Array, error) {
	a, ok := n.(*ast.Array)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, n.Line())
	}
	return a, nil
}

// GetVar requires n to be a Var, raising type_mismatch otherwise. Several
// built-ins (`set`, `define`, `for`, `foreach`, the 3-arg form of `at`)
// require their first argument to be a bare variable name rather than an
// arbitrary expression.
func GetVar(n ast.Node) (*ast.Var, error) {
	v, ok := n.(*ast.Var)
	if !ok {
		return nil, diagnostics.New(diagnostics.KindTypeMismatch, n.Line())
	}
	return v, nil
}
