package lisp

import (
	"io"
	"os"
)

// Runtime is state shared by every LEnv descending from one root LEnv.
type Runtime struct {
	Reader Reader
	Stderr io.Writer
	Stack  *CallStack
}

// LEnv is a lisp environment frame.  A child frame resolves symbols it does
// not bind through its Parent.
type LEnv struct {
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  If parent is nil the
// returned LEnv is a root environment with a new Runtime, otherwise it shares
// the Runtime of parent.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = &Runtime{
			Stderr: os.Stderr,
			Stack:  &CallStack{MaxHeight: DefaultMaxStackHeight},
		}
	}
	return &LEnv{
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: runtime,
	}
}

// InitializeUserEnv adds the default builtins to env and applies config.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	env.AddBuiltins()
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value bound to k in env or its nearest ancestor.  Get
// returns false if no frame in the chain binds k.
func (env *LEnv) Get(k string) (*LVal, bool) {
	for ; env != nil; env = env.Parent {
		v, ok := env.Scope[k]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Put binds k to v in env, shadowing any binding of k in an ancestor.
func (env *LEnv) Put(k string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Scope[k] = v
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		_, exists := env.Get(f.Name())
		if exists {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(f.Name(), Fun(f.Name(), f.Eval))
	}
}

// EvalString reads the first expression in source with the configured Reader
// and evaluates it in env.
func (env *LEnv) EvalString(source string) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, Errorf("no reader configured")
	}
	v, err := env.Runtime.Reader.Read(source)
	if err != nil {
		return nil, err
	}
	return env.Eval(v)
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LBool, LNumber:
		return v, nil
	case LSymbol:
		x, ok := env.Get(v.Str)
		if !ok {
			return nil, Errorf("unexpected symbol k='%s'", v.Str)
		}
		return x, nil
	case LList:
		return env.EvalList(v)
	default:
		return nil, Errorf("unexpected form")
	}
}

// EvalList evaluates the expression s, either a special form or a function
// application.
func (env *LEnv) EvalList(s *LVal) (*LVal, error) {
	if s.Type != LList {
		return nil, Errorf("not a list")
	}
	if len(s.Cells) == 0 {
		return nil, Errorf("expected a non-empty list")
	}
	head, args := s.Cells[0], s.Cells[1:]
	if head.Type == LSymbol {
		switch head.Str {
		case SpecialIf:
			return env.opIf(args)
		case SpecialDef:
			return env.opDef(args)
		case SpecialFn:
			return opFn(args)
		case SpecialExit:
			return nil, ErrExit
		}
	}

	f, err := env.Eval(head)
	if err != nil {
		return nil, err
	}
	switch f.Type {
	case LFun:
		vals, err := env.evalArgs(args)
		if err != nil {
			return nil, err
		}
		return f.Builtin(vals)
	case LLambda:
		return env.Call(callName(head), f, args)
	default:
		return nil, Errorf("first form must be a function")
	}
}

func (env *LEnv) evalArgs(forms []*LVal) ([]*LVal, error) {
	vals := make([]*LVal, len(forms))
	for i := range forms {
		v, err := env.Eval(forms[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// Call invokes the lambda fun with unevaluated argument forms.  The arguments
// are evaluated in env and bound in a new child of env in which the body of
// fun is evaluated.  The name is only used to label the call stack frame.
func (env *LEnv) Call(name string, fun *LVal, forms []*LVal) (*LVal, error) {
	if fun.Type != LLambda {
		return nil, Errorf("first form must be a function")
	}
	params, err := formalNames(fun.Formals)
	if err != nil {
		return nil, err
	}
	if len(params) != len(forms) {
		return nil, Errorf("expected %d arguments, got %d", len(params), len(forms))
	}
	args, err := env.evalArgs(forms)
	if err != nil {
		return nil, err
	}

	stack := env.Runtime.Stack
	err = stack.Push(name, len(args))
	if err != nil {
		return nil, err
	}
	defer stack.Pop()

	fenv := NewEnv(env)
	for i := range params {
		fenv.Put(params[i], args[i])
	}
	v, err := fenv.Eval(fun.Body)
	if err != nil {
		lerr, ok := err.(*ErrorVal)
		if ok && lerr.Stack == nil {
			lerr.Stack = stack.Copy()
		}
		return nil, err
	}
	return v, nil
}

func formalNames(formals *LVal) ([]string, error) {
	if formals == nil || formals.Type != LList {
		return nil, Errorf("expected args form to be a list")
	}
	names := make([]string, len(formals.Cells))
	for i, c := range formals.Cells {
		if c.Type != LSymbol {
			return nil, Errorf("expected symbols in the argument list")
		}
		names[i] = c.Str
	}
	return names, nil
}

func callName(head *LVal) string {
	if head.Type == LSymbol {
		return head.Str
	}
	return LambdaFID
}
