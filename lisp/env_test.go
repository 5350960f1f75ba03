package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertNumberEqual(t *testing.T, expect float64, v *LVal) {
	t.Helper()
	if assert.NotNil(t, v) && assert.Equal(t, LNumber, v.Type) {
		assert.Equal(t, expect, v.Num)
	}
}

func TestRoot(t *testing.T) {
	env := NewEnv(nil)
	assert.Nil(t, env.Parent)
	assert.Len(t, env.Scope, 0)
	env.Put("a", Number(1))
	_, ok := env.Get("b")
	assert.False(t, ok)
	v, ok := env.Get("a")
	if assert.True(t, ok) {
		AssertNumberEqual(t, 1, v)
	}
	env.Put("a", Number(2))
	v, ok = env.Get("a")
	if assert.True(t, ok) {
		AssertNumberEqual(t, 2, v)
	}
}

func TestChild(t *testing.T) {
	root := NewEnv(nil)
	root.Put("a", Number(1))
	root.Put("b", Number(2))
	env := NewEnv(root)
	assert.Same(t, root.Runtime, env.Runtime)
	assert.Len(t, env.Scope, 0)
	env.Put("b", Number(3))
	v, ok := env.Get("a")
	if assert.True(t, ok) {
		AssertNumberEqual(t, 1, v)
	}
	v, ok = env.Get("b")
	if assert.True(t, ok) {
		AssertNumberEqual(t, 3, v)
	}
	v, ok = root.Get("b")
	if assert.True(t, ok) {
		AssertNumberEqual(t, 2, v)
	}
	env.Put("c", Number(4))
	_, ok = root.Get("c")
	assert.False(t, ok)
}

func TestAddBuiltins(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()
	for _, name := range []string{"+", "-", "=", ">", ">=", "<", "<="} {
		v, ok := env.Get(name)
		if assert.True(t, ok, "builtin: %s", name) {
			assert.Equal(t, LFun, v.Type, "builtin: %s", name)
			assert.Equal(t, name, v.FID, "builtin: %s", name)
		}
	}
	assert.Panics(t, func() { env.AddBuiltins() })
}

func TestInitializeUserEnv(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(nil)
	err := InitializeUserEnv(env,
		WithStderr(&buf),
		WithMaximumStackHeight(7))
	require.NoError(t, err)
	assert.Same(t, &buf, env.Runtime.Stderr)
	assert.Equal(t, 7, env.Runtime.Stack.MaxHeight)
	_, ok := env.Get("+")
	assert.True(t, ok)

	err = InitializeUserEnv(NewEnv(nil), WithMaximumStackHeight(-1))
	assert.Error(t, err)
}

func TestEvalStringNoReader(t *testing.T) {
	env := NewEnv(nil)
	_, err := env.EvalString("(+ 1 2)")
	if assert.Error(t, err) {
		assert.Equal(t, "no reader configured", err.Error())
	}
}

func TestEvalSelf(t *testing.T) {
	env := NewEnv(nil)
	for _, v := range []*LVal{Number(2), Bool(true), Bool(false)} {
		r, err := env.Eval(v)
		if assert.NoError(t, err) {
			assert.Same(t, v, r)
		}
	}
	for _, v := range []*LVal{Fun("f", builtinAdd), Lambda(List(), Number(1)), {}} {
		_, err := env.Eval(v)
		if assert.Error(t, err) {
			assert.Equal(t, "unexpected form", err.Error())
		}
	}
}
