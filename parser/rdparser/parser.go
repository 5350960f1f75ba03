// Package rdparser is a recursive-descent parser over the tokens produced by
// package lexer.
package rdparser

import (
	"errors"
	"strconv"

	"github.com/jonaylor89/risp/lisp"
	"github.com/jonaylor89/risp/parser/token"
)

// Parse parses one expression from the beginning of tokens and returns it
// along with the tokens that follow it.
func Parse(tokens []string) (*lisp.LVal, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, lisp.Errorf("could not get token")
	}
	tok, rest := tokens[0], tokens[1:]
	switch token.TypeOf(tok) {
	case token.PAREN_L:
		return parseList(rest)
	case token.PAREN_R:
		return nil, nil, lisp.Errorf("unexpected )")
	case token.ATOM:
		return ParseAtom(tok), rest, nil
	default:
		return nil, nil, lisp.Errorf("invalid token: %q", tok)
	}
}

// parseList parses expressions until the closing parenthesis of a list whose
// opening parenthesis has already been consumed.
func parseList(tokens []string) (*lisp.LVal, []string, error) {
	var cells []*lisp.LVal
	for {
		if len(tokens) == 0 {
			return nil, nil, lisp.Errorf("could not find closing )")
		}
		if token.TypeOf(tokens[0]) == token.PAREN_R {
			return lisp.List(cells...), tokens[1:], nil
		}
		v, rest, err := Parse(tokens)
		if err != nil {
			return nil, nil, err
		}
		cells = append(cells, v)
		tokens = rest
	}
}

// ParseAtom returns the boolean, number or symbol represented by tok.
func ParseAtom(tok string) *lisp.LVal {
	switch tok {
	case "true":
		return lisp.Bool(true)
	case "false":
		return lisp.Bool(false)
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return lisp.Number(x)
	}
	return lisp.Symbol(tok)
}
