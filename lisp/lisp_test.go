package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	for _, x := range []bool{true, false} {
		v := Bool(x)
		require.Equal(t, LBool, v.Type, "input: %v", x)
		assert.Equal(t, x, v.Bool, "input: %v", x)
	}
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
}

func TestNumber(t *testing.T) {
	for _, test := range []struct {
		x    float64
		repr string
	}{
		{0, "0"},
		{3, "3"},
		{-2, "-2"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "+Inf"},
	} {
		v := Number(test.x)
		require.Equal(t, LNumber, v.Type, "input: %v", test.x)
		assert.Equal(t, test.x, v.Num, "input: %v", test.x)
		assert.Equal(t, test.repr, v.String(), "input: %v", test.x)
	}
}

func TestSymbol(t *testing.T) {
	for _, x := range []string{"a", "+", "hello-world", "if"} {
		v := Symbol(x)
		require.Equal(t, LSymbol, v.Type, "input: %v", x)
		assert.Equal(t, x, v.String(), "input: %v", x)
	}
}

func TestList(t *testing.T) {
	assert.Equal(t, "()", List().String())
	assert.Equal(t, "(1)", List(Number(1)).String())
	v := List(Symbol("+"), Number(1), List(Bool(true), Symbol("x")))
	assert.Equal(t, "(+,1,(true,x))", v.String())
}

func TestFunctionString(t *testing.T) {
	f := Fun("+", builtinAdd)
	assert.True(t, f.IsFun())
	assert.Equal(t, "<builtin-function ``+''>", f.String())

	body := List(Symbol("+"), Symbol("a"))
	formals := List(Symbol("a"))
	l := Lambda(formals, body)
	assert.True(t, l.IsFun())
	assert.Equal(t, "<lambda>", l.String())
	// forms are shared, not copied
	assert.Same(t, formals, l.Formals)
	assert.Same(t, body, l.Body)

	assert.False(t, Number(1).IsFun())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "number", LNumber.String())
	assert.Equal(t, "lambda", LLambda.String())
	assert.Equal(t, "INVALID", LValType(99).String())
	assert.Equal(t, "<INVALID>", (&LVal{}).String())
}
