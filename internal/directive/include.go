package directive

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/hassan/plexer/internal/lexer"
)

// includeOperand is the participle grammar for the operand of #include.
// Whitespace is elided, so System only tells that the operand is a
// <header>; its name is read back from the raw tokens.
type includeOperand struct {
	Local  *string  `parser:"\"#\" \"include\" ( @String"`
	System []string `parser:"| \"<\" @(~\">\")+ \">\" )"`
}

var includeParser = participle.MustBuild[includeOperand](
	participle.Lexer(lexer.NewDefinition(lexer.C)),
	participle.Elide("Whitespace", "Comment"),
)

// Include is an #include directive with its operand resolved.
type Include struct {
	Directive

	// Path is the header name without delimiters. It is empty when the
	// operand is not a literal header name (a macro, for instance).
	Path string

	// System is true for <header> and false for "header".
	System bool
}

// ParseInclude resolves the operand of an #include directive.
func ParseInclude(d Directive) (Include, error) {
	if d.Name != "include" {
		return Include{}, fmt.Errorf("line %d: not an include directive: #%s", d.Line, d.Name)
	}

	op, err := includeParser.ParseString("", d.Text())
	if err != nil {
		return Include{Directive: d}, fmt.Errorf("line %d: %w", d.Line, err)
	}

	inc := Include{Directive: d}
	switch {
	case op.Local != nil:
		s := *op.Local
		inc.Path = s[1 : len(s)-1]
	case op.System != nil:
		inc.Path = headerName(d.Args())
		inc.System = true
	}
	return inc, nil
}

// headerName returns the text between '<' and the next '>', whitespace
// included.
func headerName(args []lexer.Token) string {
	start := -1
	for i, tok := range args {
		switch {
		case start < 0 && tok.Is(lexer.TokenSpecial, "<"):
			start = i + 1
		case start >= 0 && tok.Is(lexer.TokenSpecial, ">"):
			return lexer.Join(args[start:i])
		}
	}
	return ""
}

// Includes returns every #include directive of src, in order. Directives
// whose operand cannot be resolved are kept with an empty Path.
func Includes(src, key string) ([]Include, error) {
	directives, err := ScanSource(src, key)
	if err != nil {
		return nil, err
	}

	var out []Include
	for _, d := range directives {
		if d.Name != "include" {
			continue
		}
		inc, err := ParseInclude(d)
		if err != nil {
			tracer().Debugf("unresolved include: %v", err)
		}
		out = append(out, inc)
	}
	return out, nil
}
