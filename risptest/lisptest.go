// Package risptest runs sequences of risp expressions against fresh
// environments and compares the printed results.
package risptest

import (
	"testing"

	"github.com/jonaylor89/risp/lisp"
	"github.com/jonaylor89/risp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in one lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result or the error reason
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a root environment with the default builtins and a parser.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// Result evaluates expr in env and returns the printed value, or the error
// message if evaluation failed.
func Result(env *lisp.LEnv, expr string) string {
	v, err := env.EvalString(expr)
	if err != nil {
		return err.Error()
	}
	return v.String()
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite, config ...lisp.Config) {
	t.Helper()
	for i, test := range tests {
		env, err := NewEnv(config...)
		if err != nil {
			t.Fatalf("Failed to initialize lisp environment: %v", err)
		}
		for j, expr := range test.TestSequence {
			result := Result(env, expr.Expr)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
		if h := env.Runtime.Stack.Height(); h != 0 {
			t.Errorf("test %d %q: stack height %d after evaluation", i, test.Name, h)
		}
	}
}
