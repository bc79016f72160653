package lexer

// Group splits tokens into per-line groups at every newline token.
//
// With keepNewlines set the newline token ends the group it terminates;
// otherwise it is dropped. Every newline produces a group, even an empty one,
// so blank lines keep their place. Tokens after the last newline form a final
// group only if there are any. Empty input yields no groups.
func Group(tokens []Token, keepNewlines bool) [][]Token {
	var lines [][]Token
	var line []Token

	for _, tok := range tokens {
		if tok.Type != TokenNewline {
			line = append(line, tok)
			continue
		}
		if keepNewlines {
			line = append(line, tok)
		}
		if line == nil {
			line = []Token{}
		}
		lines = append(lines, line)
		line = nil
	}

	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// Flatten concatenates line groups back into a single token sequence.
// It undoes Group when newlines were kept.
func Flatten(lines [][]Token) []Token {
	n := 0
	for _, line := range lines {
		n += len(line)
	}
	tokens := make([]Token, 0, n)
	for _, line := range lines {
		tokens = append(tokens, line...)
	}
	return tokens
}

// Join returns the source text covered by tokens.
func Join(tokens []Token) string {
	n := 0
	for _, tok := range tokens {
		n += len(tok.Text)
	}
	buf := make([]byte, 0, n)
	for _, tok := range tokens {
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}

// Significant returns tokens without whitespace, newlines and comments.
func Significant(tokens []Token) []Token {
	var out []Token
	for _, tok := range tokens {
		if !tok.IsTrivia() {
			out = append(out, tok)
		}
	}
	return out
}
