package ir

import (
	"strconv"
	"strings"
)

// ExprString renders a term compactly, for logs and error messages only.
// It is not a pretty-printer and makes no attempt at reparsable output.
func ExprString(expr Expr) string {
	switch e := expr.(type) {
	case *BoolLit:
		return strconv.FormatBool(e.Value)
	case *NumLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *If:
		return ExprString(e.Cond) + " ? " + ExprString(e.Then) + " : " + ExprString(e.Else)
	case *Add:
		return ExprString(e.Left) + " + " + ExprString(e.Right)
	case *Var:
		return e.Name
	case *Func:
		params := make([]string, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, p.Name+": "+TypeString(p.Type))
		}
		return "(" + strings.Join(params, ", ") + ") => " + ExprString(e.Body)
	case *Call:
		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, ExprString(arg))
		}
		return ExprString(e.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *Seq:
		return ExprString(e.First) + "; " + ExprString(e.Second)
	case *Let:
		return "const " + e.Name + " = " + ExprString(e.Init) + "; " + ExprString(e.Rest)
	case *RecordLit:
		entries := make([]string, 0, len(e.Entries))
		for _, entry := range e.Entries {
			entries = append(entries, entry.Name+": "+ExprString(entry.Value))
		}
		return "{ " + strings.Join(entries, ", ") + " }"
	case *RecordSelect:
		return ExprString(e.Record) + "." + e.Label
	case *LetRec:
		params := make([]string, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, p.Name+": "+TypeString(p.Type))
		}
		return "function " + e.Name + "(" + strings.Join(params, ", ") + "): " +
			TypeString(e.Return) + " { " + ExprString(e.Body) + " }; " + ExprString(e.Rest)
	default:
		panic("unhandled expression variant in ExprString")
	}
}
