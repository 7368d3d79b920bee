package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knot-lang/knot/frontend/ir"
)

// stream = rec S . { num: Number, rest: () -> S }
func numStream(binder string) *ir.RecType {
	return &ir.RecType{
		Name: binder,
		Body: &ir.RecordType{Fields: []ir.RecordField{
			{Name: "num", Type: ir.Num},
			{Name: "rest", Type: &ir.FnType{Args: nil, Return: &ir.TypeVar{Name: binder}}},
		}},
	}
}

func TestSubstituteReplacesBoundVariable(t *testing.T) {
	body := &ir.FnType{
		Args:   []ir.Type{&ir.TypeVar{Name: "X"}},
		Return: ir.Bool,
	}
	got := substitute(body, "X", ir.Num)

	fn, ok := got.(*ir.FnType)
	require.True(t, ok)
	assert.Equal(t, ir.Num, fn.Args[0])
	assert.Equal(t, ir.Bool, fn.Return)
	// the input tree is never mutated
	assert.IsType(t, (*ir.TypeVar)(nil), body.Args[0])
}

func TestSubstituteRespectsShadowing(t *testing.T) {
	inner := &ir.RecType{Name: "X", Body: &ir.TypeVar{Name: "X"}}
	outer := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "shadowed", Type: inner},
		{Name: "free", Type: &ir.TypeVar{Name: "X"}},
	}}

	got := substitute(outer, "X", ir.Num)

	record, ok := got.(*ir.RecordType)
	require.True(t, ok)
	assert.Same(t, inner, record.Fields[0].Type, "the rebinding RecType must be left alone")
	assert.Equal(t, ir.Num, record.Fields[1].Type)
}

func TestUnfoldOnceKeepsRecAvailable(t *testing.T) {
	stream := numStream("S")

	once := unfoldOnce(stream)
	record, ok := once.(*ir.RecordType)
	require.True(t, ok)

	rest, ok := record.Fields[1].Type.(*ir.FnType)
	require.True(t, ok)
	require.Same(t, stream, rest.Return, "the RecType itself is the replacement")

	// so a second unfolding is always possible
	again, ok := rest.Return.(*ir.RecType)
	require.True(t, ok)
	_, ok = unfoldOnce(again).(*ir.RecordType)
	assert.True(t, ok)
}

func TestUnrollReachesConcreteShape(t *testing.T) {
	_, ok := unroll(numStream("S")).(*ir.RecordType)
	assert.True(t, ok)

	assert.Equal(t, ir.Num, unroll(ir.Num))
}

func TestUnrollStopsOnDegenerateRec(t *testing.T) {
	degenerate := &ir.RecType{Name: "X", Body: &ir.TypeVar{Name: "X"}}
	got := unroll(degenerate)
	assert.Same(t, degenerate, got)
}
