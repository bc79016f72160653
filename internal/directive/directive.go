// Package directive finds preprocessor directives in tokenized source. It
// works on the per-line token groups produced by the lexer package: a
// directive is any line whose first significant token is a '#' special.
package directive

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/hassan/plexer/internal/lexer"
)

// tracer traces with key 'plexer.directive'.
func tracer() tracing.Trace {
	return tracing.Select("plexer.directive")
}

// Directive is one preprocessor line, e.g. `#include <stdio.h>`.
type Directive struct {
	// Name is the identifier after '#', or "" for a null directive.
	Name string

	// Line is the 1-based source line.
	Line int

	// Tokens are all tokens of the line, newline excluded.
	Tokens []lexer.Token

	// args is the index of the first token after the name.
	args int
}

// Text returns the line as written.
func (d Directive) Text() string {
	return lexer.Join(d.Tokens)
}

// Args returns the tokens after the directive name, without the whitespace
// that separates them from it.
func (d Directive) Args() []lexer.Token {
	rest := d.Tokens[d.args:]
	for len(rest) > 0 && rest[0].Type == lexer.TokenWhitespace {
		rest = rest[1:]
	}
	return rest
}

// Scan returns the directives among lines, in order.
func Scan(lines [][]lexer.Token) []Directive {
	var out []Directive
	for _, line := range lines {
		if d, ok := parseLine(line); ok {
			out = append(out, d)
		}
	}
	return out
}

// ScanSource tokenizes src with the grammar registered under key and returns
// its directives.
func ScanSource(src, key string) ([]Directive, error) {
	lines, err := lexer.TokenizeLines(src, false, key)
	if err != nil {
		return nil, err
	}
	return Scan(lines), nil
}

func parseLine(line []lexer.Token) (Directive, bool) {
	i := skipBlank(line, 0)
	if i >= len(line) || !line[i].Is(lexer.TokenSpecial, "#") {
		return Directive{}, false
	}

	d := Directive{
		Line:   line[i].Line(),
		Tokens: line,
		args:   i + 1,
	}
	if j := skipBlank(line, i+1); j < len(line) && line[j].Type == lexer.TokenIdentifier {
		d.Name = line[j].Text
		d.args = j + 1
	}
	return d, true
}

// skipBlank returns the index of the first non-whitespace, non-comment token
// at or after i.
func skipBlank(line []lexer.Token, i int) int {
	for i < len(line) && (line[i].Type == lexer.TokenWhitespace || line[i].Type == lexer.TokenComment) {
		i++
	}
	return i
}
