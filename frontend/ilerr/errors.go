// Package ilerr holds the diagnostic kinds the checker can produce.
//
// Every diagnostic is deliberate: the checker stops at the first one and
// hands it back unchanged. Defects (broken engine invariants) are panics,
// never values of this package.
package ilerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/knot-lang/knot/frontend/ir"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	ConditionNotBoolean
	BranchTypeMismatch
	OperandNotNumber
	UnknownVariable
	NotAFunction
	ArgumentCountMismatch
	ArgumentTypeMismatch
	NotAnObject
	UnknownField
	ReturnTypeMismatch
)

type IleError interface {
	Error() string
	Code() ErrCode
	ir.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

func FormatWithCode(e IleError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

type NewConditionNotBoolean struct {
	ir.Positioner
	Actual ir.Type
	stack  []byte
}

func (e NewConditionNotBoolean) Code() ErrCode { return ConditionNotBoolean }
func (e NewConditionNotBoolean) Error() string {
	return fmt.Sprintf("condition must be '%s', but found '%s'", ir.BoolTypeName, ir.TypeString(e.Actual))
}
func (e NewConditionNotBoolean) getStack() []byte { return e.stack }
func (e NewConditionNotBoolean) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewBranchTypeMismatch struct {
	ir.Positioner
	Then  ir.Type
	Else  ir.Type
	stack []byte
}

func (e NewBranchTypeMismatch) Code() ErrCode { return BranchTypeMismatch }
func (e NewBranchTypeMismatch) Error() string {
	return fmt.Sprintf("branches of a conditional must have the same type, but found '%s' and '%s'",
		ir.TypeString(e.Then), ir.TypeString(e.Else))
}
func (e NewBranchTypeMismatch) getStack() []byte { return e.stack }
func (e NewBranchTypeMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewOperandNotNumber struct {
	ir.Positioner
	Actual ir.Type
	stack  []byte
}

func (e NewOperandNotNumber) Code() ErrCode { return OperandNotNumber }
func (e NewOperandNotNumber) Error() string {
	return fmt.Sprintf("operand of '+' must be '%s', but found '%s'", ir.NumTypeName, ir.TypeString(e.Actual))
}
func (e NewOperandNotNumber) getStack() []byte { return e.stack }
func (e NewOperandNotNumber) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnknownVariable struct {
	ir.Positioner
	Name  string
	stack []byte
}

func (e NewUnknownVariable) Code() ErrCode { return UnknownVariable }
func (e NewUnknownVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUnknownVariable) getStack() []byte { return e.stack }
func (e NewUnknownVariable) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotAFunction struct {
	ir.Positioner
	Actual ir.Type
	stack  []byte
}

func (e NewNotAFunction) Code() ErrCode { return NotAFunction }
func (e NewNotAFunction) Error() string {
	return fmt.Sprintf("cannot call a value of type '%s'", ir.TypeString(e.Actual))
}
func (e NewNotAFunction) getStack() []byte { return e.stack }
func (e NewNotAFunction) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewArgumentCountMismatch struct {
	ir.Positioner
	Want  int
	Got   int
	stack []byte
}

func (e NewArgumentCountMismatch) Code() ErrCode { return ArgumentCountMismatch }
func (e NewArgumentCountMismatch) Error() string {
	return fmt.Sprintf("wrong number of arguments: expected %d, found %d", e.Want, e.Got)
}
func (e NewArgumentCountMismatch) getStack() []byte { return e.stack }
func (e NewArgumentCountMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewArgumentTypeMismatch struct {
	ir.Positioner
	Index int
	Want  ir.Type
	Got   ir.Type
	stack []byte
}

func (e NewArgumentTypeMismatch) Code() ErrCode { return ArgumentTypeMismatch }
func (e NewArgumentTypeMismatch) Error() string {
	return fmt.Sprintf("argument %d must be assignable to '%s', but found '%s'",
		e.Index+1, ir.TypeString(e.Want), ir.TypeString(e.Got))
}
func (e NewArgumentTypeMismatch) getStack() []byte { return e.stack }
func (e NewArgumentTypeMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotAnObject struct {
	ir.Positioner
	Actual ir.Type
	stack  []byte
}

func (e NewNotAnObject) Code() ErrCode { return NotAnObject }
func (e NewNotAnObject) Error() string {
	return fmt.Sprintf("cannot select a field from a value of type '%s'", ir.TypeString(e.Actual))
}
func (e NewNotAnObject) getStack() []byte { return e.stack }
func (e NewNotAnObject) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnknownField struct {
	ir.Positioner
	Field  string
	Record ir.Type
	stack  []byte
}

func (e NewUnknownField) Code() ErrCode { return UnknownField }
func (e NewUnknownField) Error() string {
	return fmt.Sprintf("type '%s' has no field '%s'", ir.TypeString(e.Record), e.Field)
}
func (e NewUnknownField) getStack() []byte { return e.stack }
func (e NewUnknownField) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewReturnTypeMismatch struct {
	ir.Positioner
	Declared ir.Type
	Inferred ir.Type
	stack    []byte
}

func (e NewReturnTypeMismatch) Code() ErrCode { return ReturnTypeMismatch }
func (e NewReturnTypeMismatch) Error() string {
	return fmt.Sprintf("declared return type is '%s', but the body has type '%s'",
		ir.TypeString(e.Declared), ir.TypeString(e.Inferred))
}
func (e NewReturnTypeMismatch) getStack() []byte { return e.stack }
func (e NewReturnTypeMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
