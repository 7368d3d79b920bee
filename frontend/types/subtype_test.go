package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knot-lang/knot/frontend/ir"
)

func TestSubtypeReflexive(t *testing.T) {
	testCases := []struct {
		name string
		typ  ir.Type
	}{
		{name: "boolean", typ: ir.Bool},
		{name: "number", typ: ir.Num},
		{name: "function", typ: &ir.FnType{Args: []ir.Type{ir.Num}, Return: ir.Bool}},
		{name: "record", typ: &ir.RecordType{Fields: []ir.RecordField{{Name: "foo", Type: ir.Num}}}},
		{name: "recursive stream", typ: numStream("S")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.True(t, Subtype(testCase.typ, testCase.typ))
		})
	}
}

func TestSubtypeWidth(t *testing.T) {
	wide := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "foo", Type: ir.Num},
		{Name: "bar", Type: ir.Bool},
	}}
	narrow := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "foo", Type: ir.Num},
	}}

	assert.True(t, Subtype(wide, narrow), "extra fields are allowed in the subtype")
	assert.False(t, Subtype(narrow, wide), "missing fields are not")
}

func TestSubtypeDepthOnFields(t *testing.T) {
	sub := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "inner", Type: &ir.RecordType{Fields: []ir.RecordField{
			{Name: "foo", Type: ir.Num},
			{Name: "bar", Type: ir.Bool},
		}}},
	}}
	sup := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "inner", Type: &ir.RecordType{Fields: []ir.RecordField{
			{Name: "foo", Type: ir.Num},
		}}},
	}}

	assert.True(t, Subtype(sub, sup))
	assert.False(t, Subtype(sup, sub))
}

func TestSubtypeFunctionVariance(t *testing.T) {
	// accepts any {foo} record, returns a wide record
	general := &ir.FnType{
		Args: []ir.Type{&ir.RecordType{Fields: []ir.RecordField{
			{Name: "foo", Type: ir.Num},
		}}},
		Return: &ir.RecordType{Fields: []ir.RecordField{
			{Name: "foo", Type: ir.Num},
			{Name: "bar", Type: ir.Bool},
		}},
	}
	// demands a wider argument, promises a narrower result
	specific := &ir.FnType{
		Args: []ir.Type{&ir.RecordType{Fields: []ir.RecordField{
			{Name: "foo", Type: ir.Num},
			{Name: "bar", Type: ir.Bool},
		}}},
		Return: &ir.RecordType{Fields: []ir.RecordField{
			{Name: "foo", Type: ir.Num},
		}},
	}

	assert.True(t, Subtype(general, specific),
		"contravariant parameters, covariant return")
	assert.False(t, Subtype(specific, general))
}

func TestSubtypeFunctionArity(t *testing.T) {
	one := &ir.FnType{Args: []ir.Type{ir.Num}, Return: ir.Num}
	two := &ir.FnType{Args: []ir.Type{ir.Num, ir.Num}, Return: ir.Num}
	assert.False(t, Subtype(one, two))
	assert.False(t, Subtype(two, one))
}

func TestSubtypeTransitive(t *testing.T) {
	a := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "foo", Type: ir.Num},
		{Name: "bar", Type: ir.Bool},
		{Name: "baz", Type: ir.Num},
	}}
	b := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "foo", Type: ir.Num},
		{Name: "bar", Type: ir.Bool},
	}}
	c := &ir.RecordType{Fields: []ir.RecordField{
		{Name: "foo", Type: ir.Num},
	}}

	assert.True(t, Subtype(a, b))
	assert.True(t, Subtype(b, c))
	assert.True(t, Subtype(a, c))
}

func TestSubtypeNoPrimitiveWidening(t *testing.T) {
	assert.False(t, Subtype(ir.Bool, ir.Num))
	assert.False(t, Subtype(ir.Num, ir.Bool))
}

func TestSubtypeTerminatesOnRecursiveTypes(t *testing.T) {
	stream := numStream("S")

	// a recursive record is a subtype of the narrower shapes it unfolds to
	head := &ir.RecordType{Fields: []ir.RecordField{{Name: "num", Type: ir.Num}}}
	assert.True(t, Subtype(stream, head))
	assert.False(t, Subtype(head, stream))

	// two distinct recursive types, both sides unfolding forever
	// without the seen-pair guard
	richer := &ir.RecType{
		Name: "R",
		Body: &ir.RecordType{Fields: []ir.RecordField{
			{Name: "num", Type: ir.Num},
			{Name: "label", Type: ir.Bool},
			{Name: "rest", Type: &ir.FnType{Args: nil, Return: &ir.TypeVar{Name: "R"}}},
		}},
	}
	assert.True(t, Subtype(richer, stream))
	assert.False(t, Subtype(stream, richer))
}
