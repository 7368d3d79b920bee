// Package frontend is the entry point for checking a program.
//
// The checker consumes a pre-built ir.Expr tree: a parser (an external
// collaborator, like the builders in frontend/construct) produces the
// tree, and this package returns either its unique type or the first
// diagnostic encountered. It holds no state between calls and is safe
// to invoke concurrently on independent trees.
package frontend

import (
	"log/slog"
	"sort"

	"github.com/knot-lang/knot/frontend/ilerr"
	"github.com/knot-lang/knot/frontend/ir"
	"github.com/knot-lang/knot/frontend/types"
)

// Typecheck checks a closed program, starting from an empty scope.
func Typecheck(program ir.Expr) (ir.Type, ilerr.IleError) {
	return types.NewTypeCtx().Check(program)
}

// TypecheckWithEnv checks a program under pre-declared bindings, for
// drivers that expose globals to the checked program. Bindings are
// applied in name order so results do not depend on map iteration.
func TypecheckWithEnv(program ir.Expr, bindings map[string]ir.Type) (ir.Type, ilerr.IleError) {
	ctx := types.NewTypeCtx()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ctx = ctx.Bind(name, bindings[name])
	}
	return ctx.Check(program)
}

// TypecheckLogged is Typecheck with a caller-supplied logger; it wraps
// the logger's handler so Expr and Type attributes render lazily.
func TypecheckLogged(program ir.Expr, logger *slog.Logger) (ir.Type, ilerr.IleError) {
	wrapped := slog.New(ir.KnotIRSlogHandler(logger.Handler()))
	return types.NewTypeCtx().WithLogger(wrapped).Check(program)
}
