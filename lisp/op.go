package lisp

// opIf evaluates (if test then else).  Forms following the else form are
// ignored.
func (env *LEnv) opIf(args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, Errorf("expected test form")
	}
	test, err := env.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if test.Type != LBool {
		return nil, Errorf("unexpected test form='%s'", args[0])
	}
	idx := 2
	if test.Bool {
		idx = 1
	}
	if idx >= len(args) {
		return nil, Errorf("expected form idx=%d", idx)
	}
	return env.Eval(args[idx])
}

// opDef evaluates (def sym value), binding sym in env.  The symbol expression
// is returned, not the value.
func (env *LEnv) opDef(args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, Errorf("expected first form")
	}
	sym := args[0]
	if sym.Type != LSymbol {
		return nil, Errorf("expected first form to be a symbol")
	}
	if len(args) < 2 {
		return nil, Errorf("expected second form")
	}
	if len(args) > 2 {
		return nil, Errorf("def can only have two forms")
	}
	v, err := env.Eval(args[1])
	if err != nil {
		return nil, err
	}
	env.Put(sym.Str, v)
	return sym, nil
}

// opFn evaluates (fn formals body).  Neither form is evaluated or validated.
func opFn(args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, Errorf("expected args form")
	}
	if len(args) < 2 {
		return nil, Errorf("expected second form")
	}
	if len(args) > 2 {
		return nil, Errorf("fn definition can only have two forms")
	}
	return Lambda(args[0], args[1]), nil
}
