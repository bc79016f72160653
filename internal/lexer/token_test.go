package lexer

import (
	"testing"
)

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{TokenNewline, "newline"},
		{TokenWhitespace, "whitespace"},
		{TokenComment, "comment"},
		{TokenNumber, "number"},
		{TokenString, "string"},
		{TokenSpecial, "special"},
		{TokenIdentifier, "identifier"},
		{TokenType(-1), "unknown"},
		{TokenType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("TokenType(%d).String() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestTokenTypes(t *testing.T) {
	types := TokenTypes()
	if len(types) != 7 {
		t.Fatalf("TokenTypes() has %d entries, want 7", len(types))
	}
	for i, typ := range types {
		if int(typ) != i {
			t.Errorf("TokenTypes()[%d] = %v", i, typ)
		}
	}
}

func TestToken_Accessors(t *testing.T) {
	tok := Token{
		Type:     TokenIdentifier,
		Text:     "foo",
		Position: Position{Offset: 4, Line: 2, Column: 1},
	}

	if tok.Line() != 2 || tok.Column() != 1 {
		t.Errorf("Line/Column = %d/%d, want 2/1", tok.Line(), tok.Column())
	}
	if tok.End() != 7 {
		t.Errorf("End() = %d, want 7", tok.End())
	}
	if !tok.Is(TokenIdentifier, "foo") || tok.Is(TokenSpecial, "foo") || tok.Is(TokenIdentifier, "bar") {
		t.Errorf("Is() mismatch")
	}
	if got := tok.String(); got != `identifier "foo" at 2:1` {
		t.Errorf("String() = %q", got)
	}
}

func TestToken_IsTrivia(t *testing.T) {
	for _, typ := range TokenTypes() {
		want := typ == TokenWhitespace || typ == TokenNewline || typ == TokenComment
		if got := (Token{Type: typ}).IsTrivia(); got != want {
			t.Errorf("%v IsTrivia() = %v, want %v", typ, got, want)
		}
	}
}
