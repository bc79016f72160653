package lexer

// Rule recognizes one token category at a position in src.
//
// Match returns the number of bytes consumed starting at idx, or 0 if the
// rule does not apply there. idx is always < len(src). A rule that finds a
// construct it cannot finish (an unterminated comment, say) returns an error
// built with cur.Errorf; the tokenizer abandons the whole input in that case.
// Rules must not move cur.Offset.
type Rule interface {
	Match(src string, idx int, cur *Cursor) (int, error)
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(src string, idx int, cur *Cursor) (int, error)

// Match calls f(src, idx, cur).
func (f RuleFunc) Match(src string, idx int, cur *Cursor) (int, error) {
	return f(src, idx, cur)
}

// Nothing never matches. Grammars use it for categories they don't have.
var Nothing Rule = RuleFunc(func(string, int, *Cursor) (int, error) {
	return 0, nil
})

// Newline matches a Unix "\n" or a Windows "\r\n".
var Newline Rule = RuleFunc(matchNewline)

func matchNewline(src string, idx int, _ *Cursor) (int, error) {
	switch src[idx] {
	case '\n':
		return 1, nil
	case '\r':
		if idx+1 < len(src) && src[idx+1] == '\n' {
			return 2, nil
		}
	}
	return 0, nil
}

// Whitespace matches a single space or tab.
var Whitespace Rule = RuleFunc(matchWhitespace)

func matchWhitespace(src string, idx int, _ *Cursor) (int, error) {
	if src[idx] == ' ' || src[idx] == '\t' {
		return 1, nil
	}
	return 0, nil
}

// isNewlineAt reports whether a newline sequence begins at idx.
func isNewlineAt(src string, idx int) bool {
	n, _ := matchNewline(src, idx, nil)
	return n > 0
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
