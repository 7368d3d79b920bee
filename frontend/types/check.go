package types

import (
	"log/slog"

	"github.com/benbjohnson/immutable"
	"github.com/samber/lo"

	"github.com/knot-lang/knot/frontend/ilerr"
	"github.com/knot-lang/knot/frontend/ir"
)

// TypeCtx is the environment a term is checked under. It is persistent:
// Bind returns a new ctx and never touches the receiver, so the two
// branches of a conditional (or two function bodies under one scope)
// cannot leak bindings into each other.
type TypeCtx struct {
	env    *immutable.Map[string, ir.Type]
	logger *slog.Logger
}

func NewTypeCtx() *TypeCtx {
	return &TypeCtx{
		env:    immutable.NewMap[string, ir.Type](nil),
		logger: slog.Default(),
	}
}

func (ctx *TypeCtx) WithLogger(logger *slog.Logger) *TypeCtx {
	return &TypeCtx{env: ctx.env, logger: logger}
}

// Bind returns a ctx that also maps name to t. An existing binding for
// name is shadowed, not overwritten.
func (ctx *TypeCtx) Bind(name string, t ir.Type) *TypeCtx {
	return &TypeCtx{env: ctx.env.Set(name, t), logger: ctx.logger}
}

func (ctx *TypeCtx) bindParams(params []ir.Param) *TypeCtx {
	inner := ctx
	for _, param := range params {
		inner = inner.Bind(param.Name, param.Type)
	}
	return inner
}

func paramTypes(params []ir.Param) []ir.Type {
	return lo.Map(params, func(p ir.Param, _ int) ir.Type { return p.Type })
}

// Check returns the unique type of expr under ctx, or the first
// violated rule as a diagnostic. It never recovers: the error of the
// innermost offending node propagates out unchanged.
func (ctx *TypeCtx) Check(expr ir.Expr) (ir.Type, ilerr.IleError) {
	ctx.logger.Debug("checking node", "expr", expr)
	switch e := expr.(type) {
	case *ir.BoolLit:
		return ir.Bool, nil

	case *ir.NumLit:
		return ir.Num, nil

	case *ir.If:
		condType, err := ctx.Check(e.Cond)
		if err != nil {
			return nil, err
		}
		if _, ok := unroll(condType).(*ir.BoolType); !ok {
			return nil, ilerr.New(ilerr.NewConditionNotBoolean{
				Positioner: ir.RangeOf(e.Cond),
				Actual:     condType,
			})
		}
		thenType, err := ctx.Check(e.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := ctx.Check(e.Else)
		if err != nil {
			return nil, err
		}
		if !Equal(thenType, elseType) {
			return nil, ilerr.New(ilerr.NewBranchTypeMismatch{
				Positioner: ir.RangeOf(e),
				Then:       thenType,
				Else:       elseType,
			})
		}
		return thenType, nil

	case *ir.Add:
		for _, operand := range []ir.Expr{e.Left, e.Right} {
			operandType, err := ctx.Check(operand)
			if err != nil {
				return nil, err
			}
			if _, ok := unroll(operandType).(*ir.NumType); !ok {
				return nil, ilerr.New(ilerr.NewOperandNotNumber{
					Positioner: ir.RangeOf(operand),
					Actual:     operandType,
				})
			}
		}
		return ir.Num, nil

	case *ir.Var:
		t, ok := ctx.env.Get(e.Name)
		if !ok {
			return nil, ilerr.New(ilerr.NewUnknownVariable{
				Positioner: ir.RangeOf(e),
				Name:       e.Name,
			})
		}
		return t, nil

	case *ir.Func:
		bodyType, err := ctx.bindParams(e.Params).Check(e.Body)
		if err != nil {
			return nil, err
		}
		return &ir.FnType{
			Args:   paramTypes(e.Params),
			Return: bodyType,
			Range:  ir.RangeOf(e),
		}, nil

	case *ir.Call:
		calleeType, err := ctx.Check(e.Callee)
		if err != nil {
			return nil, err
		}
		fnType, ok := unroll(calleeType).(*ir.FnType)
		if !ok {
			return nil, ilerr.New(ilerr.NewNotAFunction{
				Positioner: ir.RangeOf(e.Callee),
				Actual:     calleeType,
			})
		}
		if len(e.Args) != len(fnType.Args) {
			return nil, ilerr.New(ilerr.NewArgumentCountMismatch{
				Positioner: ir.RangeOf(e),
				Want:       len(fnType.Args),
				Got:        len(e.Args),
			})
		}
		for i, arg := range e.Args {
			argType, err := ctx.Check(arg)
			if err != nil {
				return nil, err
			}
			// call sites want assignability, not sameness:
			// looser callers are fine
			if !Subtype(argType, fnType.Args[i]) {
				return nil, ilerr.New(ilerr.NewArgumentTypeMismatch{
					Positioner: ir.RangeOf(arg),
					Index:      i,
					Want:       fnType.Args[i],
					Got:        argType,
				})
			}
		}
		return fnType.Return, nil

	case *ir.Seq:
		if _, err := ctx.Check(e.First); err != nil {
			return nil, err
		}
		return ctx.Check(e.Second)

	case *ir.Let:
		initType, err := ctx.Check(e.Init)
		if err != nil {
			return nil, err
		}
		return ctx.Bind(e.Name, initType).Check(e.Rest)

	case *ir.RecordLit:
		fields := make([]ir.RecordField, 0, len(e.Entries))
		for _, entry := range e.Entries {
			entryType, err := ctx.Check(entry.Value)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ir.RecordField{
				Name:  entry.Name,
				Type:  entryType,
				Range: ir.RangeOf(entry),
			})
		}
		return &ir.RecordType{Fields: fields, Range: ir.RangeOf(e)}, nil

	case *ir.RecordSelect:
		recordType, err := ctx.Check(e.Record)
		if err != nil {
			return nil, err
		}
		objType, ok := unroll(recordType).(*ir.RecordType)
		if !ok {
			return nil, ilerr.New(ilerr.NewNotAnObject{
				Positioner: ir.RangeOf(e.Record),
				Actual:     recordType,
			})
		}
		field, found := lo.Find(objType.Fields, func(f ir.RecordField) bool {
			return f.Name == e.Label
		})
		if !found {
			return nil, ilerr.New(ilerr.NewUnknownField{
				Positioner: ir.RangeOf(e),
				Field:      e.Label,
				Record:     recordType,
			})
		}
		return field.Type, nil

	case *ir.LetRec:
		// the signature is built entirely from declarations, so it
		// is available while checking the body's recursive calls
		fnType := &ir.FnType{
			Args:   paramTypes(e.Params),
			Return: e.Return,
			Range:  ir.RangeOf(e),
		}
		bodyCtx := ctx.Bind(e.Name, fnType).bindParams(e.Params)
		bodyType, err := bodyCtx.Check(e.Body)
		if err != nil {
			return nil, err
		}
		if !Equal(bodyType, e.Return) {
			return nil, ilerr.New(ilerr.NewReturnTypeMismatch{
				Positioner: ir.RangeOf(e.Body),
				Declared:   e.Return,
				Inferred:   bodyType,
			})
		}
		// parameters stay out of scope for the continuation
		return ctx.Bind(e.Name, fnType).Check(e.Rest)

	default:
		panic("unhandled expression variant in Check")
	}
}
