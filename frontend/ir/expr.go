package ir

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

var (
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*NumLit)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Add)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Seq)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*RecordLit)(nil)
	_ Expr = (*RecordSelect)(nil)
	_ Expr = (*LetRec)(nil)
)

// Expr is the base for all terms of the language.
//
// The following terms are supported:
//
//	BoolLit:       boolean literal
//	NumLit:        numeric literal
//	If:            conditional with two branches
//	Add:           numeric addition
//	Var:           variable
//	Func:          function literal with annotated parameters
//	Call:          function call
//	Seq:           sequencing, the result is the second term
//	Let:           let-binding ('const name = init; rest')
//	RecordLit:     record construction
//	RecordSelect:  field projection
//	LetRec:        recursive function definition with a declared return type
//
// The set is closed: every engine switches exhaustively over it.
type Expr interface {
	Positioner
	// Describe is what to call this term in error messages
	Describe() string
	Hash() uint64
	isExpr()
}

// Param is a function parameter together with its declared type.
// Parameter types are always annotated, never inferred.
type Param struct {
	Name string
	Type Type
	Range
}

type BoolLit struct {
	Value bool
	Range
}

type NumLit struct {
	Value float64
	Range
}

type If struct {
	Cond, Then, Else Expr
	Range
}

type Add struct {
	Left, Right Expr
	Range
}

type Var struct {
	Name string
	Range
}

type Func struct {
	Params []Param
	Body   Expr
	Range
}

type Call struct {
	Callee Expr
	Args   []Expr
	Range
}

// Seq evaluates First for effect only; the whole term has Second's type.
type Seq struct {
	First, Second Expr
	Range
}

type Let struct {
	Name string
	Init Expr
	Rest Expr
	Range
}

// RecordEntry is one named sub-term of a RecordLit. Names are unique
// within a single record.
type RecordEntry struct {
	Name  string
	Value Expr
	Range
}

type RecordLit struct {
	Entries []RecordEntry
	Range
}

type RecordSelect struct {
	Record Expr
	Label  string
	Range
}

// LetRec binds Name to a function whose body may refer to Name itself.
// The return type is declared, not inferred, which is what keeps
// checking recursive calls decidable.
type LetRec struct {
	Name   string
	Params []Param
	Return Type
	Body   Expr
	Rest   Expr
	Range
}

func (*BoolLit) isExpr()      {}
func (*NumLit) isExpr()       {}
func (*If) isExpr()           {}
func (*Add) isExpr()          {}
func (*Var) isExpr()          {}
func (*Func) isExpr()         {}
func (*Call) isExpr()         {}
func (*Seq) isExpr()          {}
func (*Let) isExpr()          {}
func (*RecordLit) isExpr()    {}
func (*RecordSelect) isExpr() {}
func (*LetRec) isExpr()       {}

func (*BoolLit) Describe() string      { return "boolean literal" }
func (*NumLit) Describe() string       { return "number literal" }
func (*If) Describe() string           { return "conditional" }
func (*Add) Describe() string          { return "addition" }
func (*Var) Describe() string          { return "variable" }
func (*Func) Describe() string         { return "function" }
func (*Call) Describe() string         { return "function call" }
func (*Seq) Describe() string          { return "sequence" }
func (*Let) Describe() string          { return "declaration" }
func (*RecordLit) Describe() string    { return "record" }
func (*RecordSelect) Describe() string { return "record select" }
func (*LetRec) Describe() string       { return "recursive function" }

func (e *BoolLit) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("BoolLit"))
	if e.Value {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

func (e *NumLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("NumLit")
	arr = binary.LittleEndian.AppendUint64(arr, math.Float64bits(e.Value))
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *If) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("If")
	arr = binary.LittleEndian.AppendUint64(arr, e.Cond.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Then.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Else.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *Add) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Add")
	arr = binary.LittleEndian.AppendUint64(arr, e.Left.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Right.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *Var) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Var"))
	_, _ = h.Write([]byte(e.Name))
	return h.Sum64()
}

func (e *Func) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Func")
	for _, param := range e.Params {
		_, _ = h.Write([]byte(param.Name))
		arr = binary.LittleEndian.AppendUint64(arr, param.Type.Hash())
	}
	arr = binary.LittleEndian.AppendUint64(arr, e.Body.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *Call) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Call")
	arr = binary.LittleEndian.AppendUint64(arr, e.Callee.Hash())
	for _, arg := range e.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *Seq) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Seq")
	arr = binary.LittleEndian.AppendUint64(arr, e.First.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Second.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *Let) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Let" + e.Name))
	arr := make([]byte, 0, 16)
	arr = binary.LittleEndian.AppendUint64(arr, e.Init.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Rest.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *RecordLit) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("RecordLit")
	for _, entry := range e.Entries {
		_, _ = h.Write([]byte(entry.Name))
		arr = binary.LittleEndian.AppendUint64(arr, entry.Value.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *RecordSelect) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("RecordSelect" + e.Label))
	arr := make([]byte, 0, 8)
	arr = binary.LittleEndian.AppendUint64(arr, e.Record.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (e *LetRec) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("LetRec" + e.Name))
	arr := make([]byte, 0)
	for _, param := range e.Params {
		_, _ = h.Write([]byte(param.Name))
		arr = binary.LittleEndian.AppendUint64(arr, param.Type.Hash())
	}
	arr = binary.LittleEndian.AppendUint64(arr, e.Return.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Body.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, e.Rest.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}
