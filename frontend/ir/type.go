package ir

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

var (
	_ Type = (*BoolType)(nil)
	_ Type = (*NumType)(nil)
	_ Type = (*FnType)(nil)
	_ Type = (*RecordType)(nil)
	_ Type = (*RecType)(nil)
	_ Type = (*TypeVar)(nil)
)

// Type is the closed set of types of the language.
//
// A RecType stands for the whole (conceptually infinite) recursive type;
// a TypeVar is a reference back to an enclosing RecType binder. Types are
// plain trees: the only cycles are the conceptual ones through binder names.
type Type interface {
	ShowIn(ctx ShowCtx, outerPrecedence uint16) string
	Hash() uint64
	Positioner
	isType()
}

func TypeString(t Type) string {
	return t.ShowIn(DumbShowCtx, 0)
}

type BoolType struct{ Range }

type NumType struct{ Range }

// FnType represents a function type like (A, B) -> C
type FnType struct {
	Args   []Type
	Return Type
	Range
}

type RecordField struct {
	Name string
	Type Type
	Range
}

// RecordType keeps its fields in construction order. Field names are unique;
// order is irrelevant to equality and subtyping.
type RecordType struct {
	Fields []RecordField
	Range
}

// RecType binds Name over Body; within Body, a TypeVar carrying Name
// stands for this whole type.
type RecType struct {
	Name string
	Body Type
	Range
}

// TypeVar is a reference to an enclosing RecType's binder. A TypeVar that
// does not resolve to an enclosing binder is malformed input; the engines
// assume that never happens rather than check for it.
type TypeVar struct {
	Name string
	Range
}

func (*BoolType) isType()   {}
func (*NumType) isType()    {}
func (*FnType) isType()     {}
func (*RecordType) isType() {}
func (*RecType) isType()    {}
func (*TypeVar) isType()    {}

func (*BoolType) ShowIn(ShowCtx, uint16) string { return BoolTypeName }
func (*NumType) ShowIn(ShowCtx, uint16) string  { return NumTypeName }

func withParensIf(when bool, str string) string {
	if when {
		return "(" + str + ")"
	}
	return str
}

func (t *FnType) ShowIn(ctx ShowCtx, outerPrecedence uint16) string {
	argShow := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		argShow = append(argShow, arg.ShowIn(ctx, 0))
	}
	return withParensIf(outerPrecedence > 30,
		"("+strings.Join(argShow, ", ")+") -> "+t.Return.ShowIn(ctx, 31))
}

func (t *RecordType) ShowIn(ctx ShowCtx, _ uint16) string {
	if len(t.Fields) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	firstField := true
	for i, field := range t.Fields {
		if !firstField {
			sb.WriteString(",")
		}
		firstField = false
		sb.WriteString(" " + field.Name + ": " + field.Type.ShowIn(ctx, 0))
		if i > 6 {
			sb.WriteString(fmt.Sprintf("... (%d more)", len(t.Fields)-i))
			break
		}
	}
	sb.WriteString(" }")
	return sb.String()
}

func (t *RecType) ShowIn(ctx ShowCtx, outerPrecedence uint16) string {
	return withParensIf(outerPrecedence > 10, "rec "+t.Name+" . "+t.Body.ShowIn(ctx, 11))
}

func (t *TypeVar) ShowIn(ctx ShowCtx, _ uint16) string { return ctx.NameOf(t) }

func (*BoolType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("BoolType"))
	return h.Sum64()
}

func (*NumType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("NumType"))
	return h.Sum64()
}

func (t *FnType) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("FnType")
	for _, arg := range t.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	arr = binary.LittleEndian.AppendUint64(arr, t.Return.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *RecordType) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("RecordType")
	for _, field := range t.Fields {
		_, _ = h.Write([]byte(field.Name))
		arr = binary.LittleEndian.AppendUint64(arr, field.Type.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *RecType) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("RecType" + t.Name))
	arr := make([]byte, 0, 8)
	arr = binary.LittleEndian.AppendUint64(arr, t.Body.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (t *TypeVar) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("TypeVar"))
	_, _ = h.Write([]byte(t.Name))
	return h.Sum64()
}

type ShowCtx interface {
	NameOf(typeVar *TypeVar) string
}

type dumbShowCtx struct{}

var DumbShowCtx ShowCtx = (*dumbShowCtx)(nil)

func (*dumbShowCtx) NameOf(typeVar *TypeVar) string { return typeVar.Name }
