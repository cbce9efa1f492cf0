package evaluator

import "github.com/katayama-lang/ega/pkg/ast"

// Proc is the Go shape of an EGA built-in procedure. It receives the
// call's raw, unevaluated argument nodes rather than pre-evaluated values:
// built-ins like `if`, `set`, `for` and `and` each decide for themselves
// which arguments to evaluate, how many times, and whether a missing
// result is an error. Use Context.EvalArg to evaluate an argument.
type Proc func(c *Context, args []ast.Node, line int) (ast.Node, error)

// Function is one registered built-in: a name, its accepted argument-count
// range, the procedure itself, and the help text `help <name>` prints.
type Function struct {
	Name    string
	MinArgs int
	MaxArgs int
	Proc    Proc
	Help    string
}

// Registry holds every built-in reachable at parse and eval time. A single
// Registry is shared by the parser (to resolve the Var/Call ambiguity) and
// the evaluator (to dispatch calls), since both must agree on exactly the
// same set of names.
type Registry struct {
	fns   map[string]*Function
	order []string
}

func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]*Function)}
}

// Register adds fn, keyed by fn.Name. An operator alias such as "+" for
// "plus" is its own entry under its own name. Registering the same name
// twice replaces the earlier entry but keeps the first registration's
// position in Names.
func (r *Registry) Register(fn Function) {
	if _, exists := r.fns[fn.Name]; !exists {
		r.order = append(r.order, fn.Name)
	}
	f := fn
	r.fns[fn.Name] = &f
}

// Get returns the registered function named name, or nil.
func (r *Registry) Get(name string) *Function {
	return r.fns[name]
}

// IsFunction implements parser.Registry.
func (r *Registry) IsFunction(name string) bool {
	return r.fns[name] != nil
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
