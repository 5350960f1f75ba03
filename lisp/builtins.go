package lisp

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(args []*LVal) (*LVal, error)
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(args []*LVal) (*LVal, error) {
	return fun.fun(args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"=", builtinMonotonic(func(a, b float64) bool { return a == b })},
	{">", builtinMonotonic(func(a, b float64) bool { return a > b })},
	{">=", builtinMonotonic(func(a, b float64) bool { return a >= b })},
	{"<", builtinMonotonic(func(a, b float64) bool { return a < b })},
	{"<=", builtinMonotonic(func(a, b float64) bool { return a <= b })},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins)+len(userBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	offset := len(langBuiltins)
	for i := range userBuiltins {
		ops[offset+i] = userBuiltins[i]
	}
	return ops
}

func numbers(args []*LVal) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, v := range args {
		if v.Type != LNumber {
			return nil, Errorf("expected a number")
		}
		xs[i] = v.Num
	}
	return xs, nil
}

func builtinAdd(args []*LVal) (*LVal, error) {
	xs, err := numbers(args)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return Number(sum), nil
}

func builtinSub(args []*LVal) (*LVal, error) {
	xs, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, Errorf("expected at least one number")
	}
	var rest float64
	for _, x := range xs[1:] {
		rest += x
	}
	return Number(xs[0] - rest), nil
}

// builtinMonotonic returns a builtin that is true when rel holds for every
// adjacent pair of its arguments.
func builtinMonotonic(rel func(a, b float64) bool) LBuiltin {
	return func(args []*LVal) (*LVal, error) {
		xs, err := numbers(args)
		if err != nil {
			return nil, err
		}
		if len(xs) == 0 {
			return nil, Errorf("expected at least one number")
		}
		for i := 1; i < len(xs); i++ {
			if !rel(xs[i-1], xs[i]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	}
}
