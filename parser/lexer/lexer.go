// Package lexer splits risp source text into tokens.
package lexer

import (
	"fmt"

	parsec "github.com/prataprc/goparsec"
)

// spaceClass matches the runes accepted by unicode.IsSpace.
const spaceClass = `\s\v\x{85}\p{Z}`

const (
	whitespacePattern = `^[` + spaceClass + `]+`
	tokenPattern      = `^(?:[()]|[^` + spaceClass + `()]+)`
)

// Tokenize splits text into tokens.  Every parenthesis is a token of its own
// and any other run of characters not containing whitespace or parentheses is
// a single token.  Tokenize never fails and returns no tokens for blank text.
func Tokenize(text string) []string {
	var tokens []string
	var tok []byte
	s := parsec.NewScanner([]byte(text))
	for {
		_, s = s.Match(whitespacePattern)
		if s.Endof() {
			return tokens
		}
		tok, s = s.Match(tokenPattern)
		if tok == nil {
			// every rune is either whitespace or the start of a token
			panic(fmt.Sprintf("lexer stalled at offset %d", s.GetCursor()))
		}
		tokens = append(tokens, string(tok))
	}
}
