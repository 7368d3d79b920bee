package types

import (
	"github.com/samber/lo"

	"github.com/knot-lang/knot/frontend/ir"
)

// Subtype decides whether sub can stand in wherever sup is expected.
// The relation is reflexive and transitive but not symmetric: records
// use width subtyping and function types are contravariant in their
// parameters and covariant in their return type.
func Subtype(sub, sup ir.Type) bool {
	return subtypeWith(sub, sup, newPairSet())
}

// subtypeWith uses the same seen-pair guard as equalWith; without it a
// self-referential record type sends the walk into its own unfolding
// forever.
func subtypeWith(sub, sup ir.Type, seen *pairSet) bool {
	if assumed(seen, sub, sup) {
		return true
	}
	if rec, ok := sub.(*ir.RecType); ok {
		return subtypeWith(unfoldOnce(rec), sup, assuming(seen, sub, sup))
	}
	if rec, ok := sup.(*ir.RecType); ok {
		return subtypeWith(sub, unfoldOnce(rec), assuming(seen, sub, sup))
	}
	switch supT := sup.(type) {
	case *ir.BoolType:
		_, ok := sub.(*ir.BoolType)
		return ok
	case *ir.NumType:
		_, ok := sub.(*ir.NumType)
		return ok
	case *ir.FnType:
		subT, ok := sub.(*ir.FnType)
		if !ok || len(subT.Args) != len(supT.Args) {
			return false
		}
		for i, arg := range supT.Args {
			// parameters flip direction: a safe substitute must
			// accept at least what sup accepts
			if !subtypeWith(arg, subT.Args[i], seen) {
				return false
			}
		}
		return subtypeWith(subT.Return, supT.Return, seen)
	case *ir.RecordType:
		subT, ok := sub.(*ir.RecordType)
		if !ok {
			return false
		}
		// width subtyping: sub may carry fields sup never mentions
		for _, field := range supT.Fields {
			other, found := lo.Find(subT.Fields, func(f ir.RecordField) bool {
				return f.Name == field.Name
			})
			if !found || !subtypeWith(other.Type, field.Type, seen) {
				return false
			}
		}
		return true
	case *ir.TypeVar:
		panic("unbound type variable '" + supT.Name + "' reached subtype comparison")
	default:
		panic("unhandled type variant in subtypeWith")
	}
}
