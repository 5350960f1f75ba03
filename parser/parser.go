/*
Package parser provides a lisp parser.

	expr   := '(' <expr>* ')' | <bool> | <number> | <symbol>
	bool   := 'true' | 'false'
	number := any token accepted by strconv.ParseFloat
	symbol := /[^()[:space:]]+/

Only the first expression of a source text is parsed.  Anything that follows
it, including unbalanced closing parentheses, is ignored.
*/
package parser

import (
	"github.com/jonaylor89/risp/lisp"
	"github.com/jonaylor89/risp/parser/lexer"
	"github.com/jonaylor89/risp/parser/rdparser"
)

// Parse parses the first expression in text.
func Parse(text string) (*lisp.LVal, error) {
	v, _, err := rdparser.Parse(lexer.Tokenize(text))
	if err != nil {
		return nil, err
	}
	return v, nil
}

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(source string) (*lisp.LVal, error) {
	return Parse(source)
}
