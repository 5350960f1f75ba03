package token

// Type is the kind of a token, the only information the parser needs to
// choose a production.
type Type uint

// Type constants used for the risp lexer/parser.
const (
	INVALID Type = iota

	// ATOM is a literal boolean, a number or a symbol.
	ATOM

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ATOM:    "atom",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// TypeOf returns the Type of a token produced by the lexer.  The empty string
// is not a valid token.
func TypeOf(text string) Type {
	switch text {
	case "":
		return INVALID
	case "(":
		return PAREN_L
	case ")":
		return PAREN_R
	default:
		return ATOM
	}
}
