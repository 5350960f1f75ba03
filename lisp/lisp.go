package lisp

import (
	"bytes"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LBool
	LSymbol
	LNumber
	LList
	LFun
	LLambda
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LBool:    "bool",
	LSymbol:  "symbol",
	LNumber:  "number",
	LList:    "list",
	LFun:     "function",
	LLambda:  "lambda",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a native function that can be called from lisp.
type LBuiltin func(args []*LVal) (*LVal, error)

// LVal is a lisp value.  Parsed code and runtime data share the
// representation.  Only the fields corresponding to Type are meaningful.
type LVal struct {
	Type  LValType
	Bool  bool
	Num   float64
	Str   string
	Cells []*LVal

	// Variables needed for function values
	FID     string
	Builtin LBuiltin
	Formals *LVal
	Body    *LVal
}

// Bool returns an LVal with the truth value of ok.
func Bool(ok bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: ok,
	}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// List returns an LVal containing cells.  The cells are not copied.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Fun returns an LVal representing a builtin function.  The fid is used to
// identify the function in call stacks and when the value is printed.
func Fun(fid string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fid,
		Builtin: fn,
	}
}

// Lambda returns an anonymous function that binds formals when called and
// evaluates body.  Neither formals nor body are copied or checked here, the
// returned value shares them with the expression that created it.
func Lambda(formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Formals: formals,
		Body:    body,
	}
}

// IsFun returns true if v can appear as the evaluated head of an expression.
func (v *LVal) IsFun() bool {
	return v.Type == LFun || v.Type == LLambda
}

func (v *LVal) String() string {
	switch v.Type {
	case LBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case LSymbol:
		return v.Str
	case LNumber:
		return formatNumber(v.Num)
	case LList:
		var buf bytes.Buffer
		buf.WriteString("(")
		for i, c := range v.Cells {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(c.String())
		}
		buf.WriteString(")")
		return buf.String()
	case LFun:
		return "<builtin-function ``" + v.FID + "''>"
	case LLambda:
		return "<lambda>"
	default:
		return "<" + v.Type.String() + ">"
	}
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
