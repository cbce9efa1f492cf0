package evaluator

import (
	"strconv"
	"strings"

	"github.com/katayama-lang/ega/pkg/ast"
)

// Dump renders a fully evaluated value the way `print`/`println` (quoted
// false) or `dump`/`dumpln`/`?` (quoted true) do. Quoted mode wraps a
// string in `"..."` and doubles any internal `"`; unquoted mode prints a
// string's raw bytes. Arrays always render as `{ e1, e2, ... }`, with each
// element dumped using the same quoting mode.
func Dump(n ast.Node, quoted bool) string {
	switch v := n.(type) {
	case *ast.Int:
		return strconv.Itoa(v.Value)
	case *ast.Str:
		if !quoted {
			return v.Value
		}
		return `"` + strings.ReplaceAll(v.Value, `"`, `""`) + `"`
	case *ast.Array:
		parts := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			parts[i] = Dump(e, quoted)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return ""
	}
}
