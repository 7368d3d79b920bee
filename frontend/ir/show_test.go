package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	stream := &RecType{
		Name: "S",
		Body: &RecordType{Fields: []RecordField{
			{Name: "num", Type: Num},
			{Name: "rest", Type: &FnType{Args: nil, Return: &TypeVar{Name: "S"}}},
		}},
	}

	testCases := []struct {
		typ      Type
		expected string
	}{
		{typ: Bool, expected: "Boolean"},
		{typ: Num, expected: "Number"},
		{typ: &FnType{Args: []Type{Num, Bool}, Return: Num}, expected: "(Number, Boolean) -> Number"},
		{typ: &RecordType{}, expected: "{}"},
		{typ: &RecordType{Fields: []RecordField{{Name: "foo", Type: Num}}}, expected: "{ foo: Number }"},
		{typ: stream, expected: "rec S . { num: Number, rest: () -> S }"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, TypeString(testCase.typ))
		})
	}
}

func TestExprString(t *testing.T) {
	expr := &Let{
		Name: "x",
		Init: &NumLit{Value: 1},
		Rest: &Add{Left: &Var{Name: "x"}, Right: &NumLit{Value: 2}},
	}
	assert.Equal(t, "const x = 1; x + 2", ExprString(expr))

	fn := &Func{
		Params: []Param{{Name: "x", Type: Num}},
		Body:   &Var{Name: "x"},
	}
	assert.Equal(t, "(x: Number) => x", ExprString(fn))
}

func TestHashDistinguishesShapes(t *testing.T) {
	a := &RecordType{Fields: []RecordField{{Name: "foo", Type: Num}}}
	b := &RecordType{Fields: []RecordField{{Name: "foo", Type: Bool}}}
	c := &RecordType{Fields: []RecordField{{Name: "bar", Type: Num}}}

	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Equal(t, a.Hash(), (&RecordType{Fields: []RecordField{{Name: "foo", Type: Num}}}).Hash())

	// positions are inert payload and must not affect hashes
	positioned := &RecordType{
		Fields: []RecordField{{Name: "foo", Type: Num}},
		Range:  Range{PosStart: 5, PosEnd: 9},
	}
	assert.Equal(t, a.Hash(), positioned.Hash())
}
