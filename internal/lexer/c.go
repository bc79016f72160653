package lexer

// CComment matches "// ..." up to, not including, the end of the line, and
// "/* ... */" including its delimiters. Newlines inside a block comment are
// reported to the cursor. A block comment without "*/" fails with
// ErrUnterminatedComment at the comment's first byte.
var CComment Rule = RuleFunc(matchCComment)

func matchCComment(src string, idx int, cur *Cursor) (int, error) {
	end := len(src)
	if src[idx] != '/' || idx+1 >= end {
		return 0, nil
	}
	start := idx

	switch src[idx+1] {
	case '/':
		idx += 2
		for idx < end && !isNewlineAt(src, idx) {
			idx++
		}
		return idx - start, nil

	case '*':
		idx += 2
		for idx < end {
			switch src[idx] {
			case '\n':
				cur.Newline(idx + 1)
			case '*':
				if idx+1 < end && src[idx+1] == '/' {
					return idx + 2 - start, nil
				}
			}
			idx++
		}
		return 0, cur.Errorf(ErrUnterminatedComment, start, "unterminated block comment")
	}

	return 0, nil
}

// CString matches a double-quoted literal. A quote directly after a
// backslash is escaped, both as an opening and as a closing quote, and a
// quote written as the character literal '"' does not open a string. Raw
// newlines inside the literal are reported to the cursor. A string with no
// closing quote fails with ErrUnterminatedString at end of input.
var CString Rule = RuleFunc(matchCString)

func matchCString(src string, idx int, cur *Cursor) (int, error) {
	end := len(src)
	if src[idx] != '"' {
		return 0, nil
	}
	if idx > 0 && src[idx-1] == '\\' {
		return 0, nil
	}
	if idx > 0 && idx+1 < end && src[idx-1] == '\'' && src[idx+1] == '\'' {
		return 0, nil
	}

	start := idx
	for idx++; idx < end; idx++ {
		if src[idx] == '\n' {
			cur.Newline(idx + 1)
		}
		if src[idx] == '"' && src[idx-1] != '\\' {
			return idx + 1 - start, nil
		}
	}
	return 0, cur.Errorf(ErrUnterminatedString, end, "unterminated string literal")
}

// CSpecials are the characters the C grammar always emits as single-character
// Special tokens.
const CSpecials = ".,:;!=-+/*&<>()[]{}#"

// C is the grammar for C and C++ sources.
var C = &Grammar{
	Name:            "c",
	Comment:         CComment,
	Number:          CNumber,
	String:          CString,
	Specials:        CSpecials,
	IdentifierChars: "_",
}
