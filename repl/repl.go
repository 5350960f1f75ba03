package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jonaylor89/risp/lisp"
	"github.com/jonaylor89/risp/parser"
)

// Option configures a repl session.
type Option func(*session)

// WithDebug makes the repl print the call stack captured by failed
// evaluations.
func WithDebug(debug bool) Option {
	return func(s *session) {
		s.debug = debug
	}
}

// WithConfig applies config to the root environment of the session.
func WithConfig(config ...lisp.Config) Option {
	return func(s *session) {
		s.config = append(s.config, config...)
	}
}

type session struct {
	env    *lisp.LEnv
	stdout io.Writer
	stderr io.Writer
	debug  bool
	config []lisp.Config
}

func newSession(stdout, stderr io.Writer, opts ...Option) (*session, error) {
	s := &session{
		stdout: stdout,
		stderr: stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.env = lisp.NewEnv(nil)
	config := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStderr(stderr),
	}
	err := lisp.InitializeUserEnv(s.env, append(config, s.config...)...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// evalLine evaluates one line of input and prints the result.  evalLine
// returns false when the session should end.
func (s *session) evalLine(line string) bool {
	v, err := s.env.EvalString(line)
	if errors.Is(err, lisp.ErrExit) {
		return false
	}
	if err != nil {
		errlnf(s.stderr, "// %v", err)
		if stack := lisp.ErrorStack(err); s.debug && stack != nil {
			stack.DebugPrint(s.env.Runtime.Stderr)
		}
		return true
	}
	fmt.Fprintf(s.stdout, "=> %v\n", v)
	return true
}

// RunRepl runs a simple repl.  RunRepl returns when input is exhausted or the
// exit special form is evaluated.
func RunRepl(prompt string, opts ...Option) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	s, err := newSession(rl.Stdout(), rl.Stderr(), opts...)
	if err != nil {
		return err
	}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// discard the line being edited
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !s.evalLine(line) {
			return nil
		}
	}
}

func errlnf(w io.Writer, format string, v ...interface{}) {
	if strings.HasSuffix(format, "\n") {
		fmt.Fprintf(w, format, v...)
		return
	}
	fmt.Fprintf(w, format+"\n", v...)
}
