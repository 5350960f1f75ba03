package lisp

import (
	"fmt"
	"io"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the stack height to exceed n.  Only calls to
// lambdas occupy stack frames.  When n is zero the stack height is bounded
// only by the host.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) error {
		if n < 0 {
			return fmt.Errorf("negative maximum stack height: %d", n)
		}
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// text.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stderr = w
		return nil
	}
}
