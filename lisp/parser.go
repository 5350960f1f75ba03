package lisp

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read parses the first expression in source.  Any text following the
	// first complete expression is ignored.
	Read(source string) (*LVal, error)
}
