package parser_test

import (
	"strings"
	"testing"

	"github.com/jonaylor89/risp/parser"
)

var benchmarkSources = []struct {
	name   string
	source string
}{
	{"atom", "12.5"},
	{"call", "(+ 1 (- 4 2))"},
	{"lambda", "((fn (a b) (if (< a b) (+ a b) (- a b))) 3 4)"},
	{"nested", strings.Repeat("(+ 1 ", 200) + "1" + strings.Repeat(")", 200)},
}

func BenchmarkParser(b *testing.B) {
	for _, bench := range benchmarkSources {
		b.Run(bench.name, func(b *testing.B) {
			r := parser.NewReader()
			for i := 0; i < b.N; i++ {
				_, err := r.Read(bench.source)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
