// Package stdlib registers EGA's built-in procedures into an
// evaluator.Registry. Every entry's name, arity range and help string is
// taken directly from the original implementation's function table so that
// `help <name>` reproduces its documentation verbatim.
package stdlib

import "github.com/katayama-lang/ega/pkg/evaluator"

// RegisterDefaults populates reg with every built-in EGA ships. Call this
// once, before parsing any source, since the parser needs the fully
// populated registry to resolve identifiers as calls vs. variables.
func RegisterDefaults(reg *evaluator.Registry) {
	registerAssignment(reg)
	registerConversion(reg)
	registerControl(reg)
	registerComparison(reg)
	registerIO(reg)
	registerArithmetic(reg)
	registerLogic(reg)
	registerCollections(reg)
}
