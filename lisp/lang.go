package lisp

// Special form names.  A list headed by one of these symbols is evaluated by
// a dedicated rule, checked before the head symbol is looked up, so a binding
// with the same name never replaces the special form.
const (
	SpecialIf   = "if"
	SpecialDef  = "def"
	SpecialFn   = "fn"
	SpecialExit = "exit"
)

// LambdaFID identifies anonymous functions on the call stack.
const LambdaFID = "lambda"
