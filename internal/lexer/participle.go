package lexer

import (
	"io"
	"strings"

	plex "github.com/alecthomas/participle/v2/lexer"
)

// Definition exposes a Grammar as a participle lexer definition, so that
// participle parsers can be driven by the tokenizer. Symbol names are the
// capitalized category names: "Newline", "Whitespace", "Comment", "Number",
// "String", "Special" and "Identifier".
type Definition struct {
	grammar *Grammar
	symbols map[string]plex.TokenType
}

var (
	_ plex.Definition       = (*Definition)(nil)
	_ plex.StringDefinition = (*Definition)(nil)
)

// NewDefinition returns a participle definition for g.
func NewDefinition(g *Grammar) *Definition {
	symbols := map[string]plex.TokenType{"EOF": plex.EOF}
	for _, t := range TokenTypes() {
		symbols[SymbolName(t)] = plex.TokenType(t)
	}
	return &Definition{grammar: g, symbols: symbols}
}

// SymbolName returns the participle symbol for t, e.g. "Identifier".
func SymbolName(t TokenType) string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Symbols implements lexer.Definition.
func (d *Definition) Symbols() map[string]plex.TokenType {
	return d.symbols
}

// Lex implements lexer.Definition. The whole input is read and tokenized
// before the first token is returned.
func (d *Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(data))
}

// LexString implements lexer.StringDefinition.
func (d *Definition) LexString(filename string, input string) (plex.Lexer, error) {
	tokens, err := d.grammar.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return &tokenStream{filename: filename, tokens: tokens, eof: endOf(filename, input)}, nil
}

// tokenStream replays an already tokenized input.
type tokenStream struct {
	filename string
	tokens   []Token
	next     int
	eof      plex.Position
}

func (s *tokenStream) Next() (plex.Token, error) {
	if s.next >= len(s.tokens) {
		return plex.EOFToken(s.eof), nil
	}
	tok := s.tokens[s.next]
	s.next++
	return plex.Token{
		Type:  plex.TokenType(tok.Type),
		Value: tok.Text,
		Pos: plex.Position{
			Filename: s.filename,
			Offset:   tok.Position.Offset,
			Line:     tok.Position.Line,
			Column:   tok.Position.Column,
		},
	}, nil
}

func endOf(filename, input string) plex.Position {
	pos := PositionOf(input, len(input))
	return plex.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
