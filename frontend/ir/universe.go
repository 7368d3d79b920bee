package ir

const (
	BoolTypeName = "Boolean"
	NumTypeName  = "Number"
)

var (
	Bool = &BoolType{}
	Num  = &NumType{}
)
