// Package construct offers shorthand builders for assembling term and
// type trees from Go. Parsing source text is a separate collaborator's
// job; embedders (and this repo's tests) build programs with these
// helpers instead. None of the built nodes carry source positions.
package construct

import (
	"github.com/knot-lang/knot/frontend/ir"
)

// Terms

func Bool(value bool) *ir.BoolLit { return &ir.BoolLit{Value: value} }

func Num(value float64) *ir.NumLit { return &ir.NumLit{Value: value} }

func If(cond, then, els ir.Expr) *ir.If {
	return &ir.If{Cond: cond, Then: then, Else: els}
}

func Add(left, right ir.Expr) *ir.Add { return &ir.Add{Left: left, Right: right} }

func Var(name string) *ir.Var { return &ir.Var{Name: name} }

// P is a parameter with its declared type: `x: number`
func P(name string, t ir.Type) ir.Param { return ir.Param{Name: name, Type: t} }

// Fn is a function literal: `(x: number) => body`
func Fn(params []ir.Param, body ir.Expr) *ir.Func {
	return &ir.Func{Params: params, Body: body}
}

func Call(callee ir.Expr, args ...ir.Expr) *ir.Call {
	return &ir.Call{Callee: callee, Args: args}
}

func Seq(first, second ir.Expr) *ir.Seq { return &ir.Seq{First: first, Second: second} }

// Let is a local binding: `const name = init; rest`
func Let(name string, init, rest ir.Expr) *ir.Let {
	return &ir.Let{Name: name, Init: init, Rest: rest}
}

// E is one named entry of a record literal
func E(name string, value ir.Expr) ir.RecordEntry {
	return ir.RecordEntry{Name: name, Value: value}
}

func Record(entries ...ir.RecordEntry) *ir.RecordLit {
	return &ir.RecordLit{Entries: entries}
}

// Select is a field projection: `record.label`
func Select(record ir.Expr, label string) *ir.RecordSelect {
	return &ir.RecordSelect{Record: record, Label: label}
}

// LetRec is a recursive function definition with a declared return type:
// `function name(params): ret { body }; rest`
func LetRec(name string, params []ir.Param, ret ir.Type, body, rest ir.Expr) *ir.LetRec {
	return &ir.LetRec{Name: name, Params: params, Return: ret, Body: body, Rest: rest}
}

// Types

func TBool() ir.Type { return ir.Bool }

func TNum() ir.Type { return ir.Num }

// TFn is a function type: `(params...) -> ret`
func TFn(ret ir.Type, params ...ir.Type) *ir.FnType {
	return &ir.FnType{Args: params, Return: ret}
}

// F is one named field of a record type
func F(name string, t ir.Type) ir.RecordField {
	return ir.RecordField{Name: name, Type: t}
}

func TRecord(fields ...ir.RecordField) *ir.RecordType {
	return &ir.RecordType{Fields: fields}
}

// TRec is a recursive type binder: within body, TVar(name) stands for
// the whole type
func TRec(name string, body ir.Type) *ir.RecType {
	return &ir.RecType{Name: name, Body: body}
}

func TVar(name string) *ir.TypeVar { return &ir.TypeVar{Name: name} }
