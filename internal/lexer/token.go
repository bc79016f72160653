package lexer

import "strconv"

// TokenType is the category of a token.
//
// Categories are deliberately coarse: the tokenizer recognizes the shape of a
// lexeme, never its meaning. Keywords, operators and punctuation are all
// Identifier or Special tokens and are told apart by their text.
type TokenType int

const (
	// TokenNewline is "\n" or "\r\n". A lone "\r" is not a newline.
	TokenNewline TokenType = iota

	// TokenWhitespace is a single space or tab.
	TokenWhitespace

	// TokenComment includes its delimiters. Line comments stop before the
	// newline that ends them.
	TokenComment

	// TokenNumber is a numeric literal, including sign and suffixes.
	TokenNumber

	// TokenString includes both quotes and any escapes, untouched.
	TokenString

	// TokenSpecial is a single character from the grammar's special set.
	TokenSpecial

	// TokenIdentifier is a maximal run of characters no other rule claimed.
	TokenIdentifier
)

var tokenNames = [...]string{
	TokenNewline:    "newline",
	TokenWhitespace: "whitespace",
	TokenComment:    "comment",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenSpecial:    "special",
	TokenIdentifier: "identifier",
}

// String returns the lower-case category name, e.g. "identifier".
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "unknown"
}

// TokenTypes lists every category in declaration order.
func TokenTypes() []TokenType {
	return []TokenType{
		TokenNewline,
		TokenWhitespace,
		TokenComment,
		TokenNumber,
		TokenString,
		TokenSpecial,
		TokenIdentifier,
	}
}

// Token is a classified, positioned slice of the input.
//
// Text is the exact matched substring; concatenating the Text of every token
// returned by Tokenize reproduces the input byte for byte. Tokens are values
// and are never modified after the tokenizer creates them.
type Token struct {
	Type     TokenType
	Text     string
	Position Position
}

// Line returns the 1-based line the token starts on.
func (t Token) Line() int {
	return t.Position.Line
}

// Column returns the 1-based column the token starts at.
func (t Token) Column() int {
	return t.Position.Column
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Position.Offset + len(t.Text)
}

// Is reports whether the token has the given type and text.
func (t Token) Is(typ TokenType, text string) bool {
	return t.Type == typ && t.Text == text
}

// String formats the token for debugging: `identifier "foo" at 1:1`.
func (t Token) String() string {
	return t.Type.String() + " " + strconv.Quote(t.Text) + " at " + t.Position.String()
}

// IsTrivia reports whether the token carries no syntax for most consumers:
// whitespace, newlines and comments.
func (t Token) IsTrivia() bool {
	switch t.Type {
	case TokenWhitespace, TokenNewline, TokenComment:
		return true
	}
	return false
}
