package types

import (
	"github.com/samber/lo"

	"github.com/knot-lang/knot/frontend/ir"
)

// Equal decides whether two types denote the same structure, where a
// recursive type is interchangeable with its own unfolding. It is a
// proper equivalence relation over that meaning: reflexive, symmetric
// and transitive.
func Equal(a, b ir.Type) bool {
	return equalWith(a, b, newPairSet())
}

// equalWith carries the coinductive hypothesis set: a pair already in
// seen has closed a cycle without contradiction and is accepted.
func equalWith(a, b ir.Type, seen *pairSet) bool {
	if assumed(seen, a, b) {
		return true
	}
	if rec, ok := a.(*ir.RecType); ok {
		return equalWith(unfoldOnce(rec), b, assuming(seen, a, b))
	}
	if rec, ok := b.(*ir.RecType); ok {
		return equalWith(a, unfoldOnce(rec), assuming(seen, a, b))
	}
	// one side drives the dispatch so there is a single canonical
	// recursion to reason about
	switch bt := b.(type) {
	case *ir.BoolType:
		_, ok := a.(*ir.BoolType)
		return ok
	case *ir.NumType:
		_, ok := a.(*ir.NumType)
		return ok
	case *ir.FnType:
		at, ok := a.(*ir.FnType)
		if !ok || len(at.Args) != len(bt.Args) {
			return false
		}
		for i, arg := range bt.Args {
			if !equalWith(at.Args[i], arg, seen) {
				return false
			}
		}
		return equalWith(at.Return, bt.Return, seen)
	case *ir.RecordType:
		at, ok := a.(*ir.RecordType)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}
		for _, field := range bt.Fields {
			other, found := lo.Find(at.Fields, func(f ir.RecordField) bool {
				return f.Name == field.Name
			})
			if !found || !equalWith(other.Type, field.Type, seen) {
				return false
			}
		}
		return true
	case *ir.TypeVar:
		// every TypeVar must have been consumed by the RecType
		// unfoldings above; reaching one here is a defect
		panic("unbound type variable '" + bt.Name + "' reached structural comparison")
	default:
		panic("unhandled type variant in equalWith")
	}
}

// alphaShapeEqual compares two types structurally, matching RecType
// binders positionally through renames instead of by name, so that
// alpha-renamed recursive types are judged equal. It is only used for
// membership tests on the seen set; the main recursion above never
// relies on it. Call with renames == nil at every fresh test.
func alphaShapeEqual(a, b ir.Type, renames map[string]string) bool {
	switch at := a.(type) {
	case *ir.BoolType:
		_, ok := b.(*ir.BoolType)
		return ok
	case *ir.NumType:
		_, ok := b.(*ir.NumType)
		return ok
	case *ir.TypeVar:
		bt, ok := b.(*ir.TypeVar)
		if !ok {
			return false
		}
		renamed, bound := renames[at.Name]
		// a variable whose binder was never matched cannot be
		// judged equal to anything
		return bound && renamed == bt.Name
	case *ir.RecType:
		bt, ok := b.(*ir.RecType)
		if !ok {
			return false
		}
		inner := make(map[string]string, len(renames)+1)
		for k, v := range renames {
			inner[k] = v
		}
		inner[at.Name] = bt.Name
		return alphaShapeEqual(at.Body, bt.Body, inner)
	case *ir.FnType:
		bt, ok := b.(*ir.FnType)
		if !ok || len(at.Args) != len(bt.Args) {
			return false
		}
		for i, arg := range at.Args {
			if !alphaShapeEqual(arg, bt.Args[i], renames) {
				return false
			}
		}
		return alphaShapeEqual(at.Return, bt.Return, renames)
	case *ir.RecordType:
		bt, ok := b.(*ir.RecordType)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}
		for _, field := range at.Fields {
			other, found := lo.Find(bt.Fields, func(f ir.RecordField) bool {
				return f.Name == field.Name
			})
			if !found || !alphaShapeEqual(field.Type, other.Type, renames) {
				return false
			}
		}
		return true
	default:
		panic("unhandled type variant in alphaShapeEqual")
	}
}
