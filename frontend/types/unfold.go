package types

import (
	"github.com/knot-lang/knot/frontend/ir"
)

// substitute replaces every TypeVar named binder inside t with replacement.
// It does not descend into a nested RecType that rebinds the same name.
// Replacement values are always closed, so shadowing is the only capture
// case that needs handling.
func substitute(t ir.Type, binder string, replacement ir.Type) ir.Type {
	switch tt := t.(type) {
	case *ir.BoolType, *ir.NumType:
		return t
	case *ir.TypeVar:
		if tt.Name == binder {
			return replacement
		}
		return t
	case *ir.FnType:
		args := make([]ir.Type, 0, len(tt.Args))
		for _, arg := range tt.Args {
			args = append(args, substitute(arg, binder, replacement))
		}
		return &ir.FnType{
			Args:   args,
			Return: substitute(tt.Return, binder, replacement),
			Range:  tt.Range,
		}
	case *ir.RecordType:
		fields := make([]ir.RecordField, 0, len(tt.Fields))
		for _, field := range tt.Fields {
			fields = append(fields, ir.RecordField{
				Name:  field.Name,
				Type:  substitute(field.Type, binder, replacement),
				Range: field.Range,
			})
		}
		return &ir.RecordType{Fields: fields, Range: tt.Range}
	case *ir.RecType:
		if tt.Name == binder {
			// the inner binder shadows ours
			return tt
		}
		return &ir.RecType{
			Name:  tt.Name,
			Body:  substitute(tt.Body, binder, replacement),
			Range: tt.Range,
		}
	default:
		panic("unhandled type variant in substitute")
	}
}

// unfoldOnce produces one level of a recursive type by substituting the
// RecType itself for its own binder. The original node is reused as the
// replacement, so every unfolding still contains the RecType and can be
// unfolded again.
func unfoldOnce(rec *ir.RecType) ir.Type {
	return substitute(rec.Body, rec.Name, rec)
}

// unrollFuel bounds unroll on degenerate binder chains like
// 'rec X . rec Y . X', which re-fold into a binder forever.
const unrollFuel = 256

// unroll strips RecType wrappers until a concrete shape surfaces, so the
// driver can dispatch on it. The pointer check stops the degenerate
// 'rec X . X', whose unfolding is itself; running out of fuel leaves the
// binder in place for the driver to reject.
func unroll(t ir.Type) ir.Type {
	for fuel := unrollFuel; fuel > 0; fuel-- {
		rec, ok := t.(*ir.RecType)
		if !ok {
			return t
		}
		unfolded := unfoldOnce(rec)
		if unfolded == t {
			return t
		}
		t = unfolded
	}
	return t
}
