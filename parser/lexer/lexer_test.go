package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	for _, test := range []struct {
		text   string
		tokens []string
	}{
		{"", nil},
		{"   \t\n", nil},
		{"(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
		{"(+ 1 (- 4 2))", []string{"(", "+", "1", "(", "-", "4", "2", ")", ")"}},
		{"((fn (a b) (+ a b)) 3 4)", []string{"(", "(", "fn", "(", "a", "b", ")", "(", "+", "a", "b", ")", ")", "3", "4", ")"}},
		{"x", []string{"x"}},
		{"  -2.5e3\n", []string{"-2.5e3"}},
		{")(", []string{")", "("}},
		{"a(b)c", []string{"a", "(", "b", ")", "c"}},
		{"foo bar", []string{"foo", "bar"}},
		{"()", []string{"(", ")"}},
	} {
		assert.Equal(t, test.tokens, Tokenize(test.text), "input: %q", test.text)
	}
}
