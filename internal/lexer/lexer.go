package lexer

import (
	"errors"
)

// Lexer runs one grammar over one input.
//
// At every position the rules are tried in a fixed order: comment, newline,
// whitespace, special character, number, string. A byte none of them claims
// extends the pending identifier run, which is emitted as a single token as
// soon as any other rule matches or the input ends. Numbers are not tried
// while an identifier is pending, so "foo2" stays one identifier.
//
// A Lexer is single use and not safe for concurrent use. Grammars are
// read-only, so any number of Lexers may share one.
type Lexer struct {
	grammar *Grammar
	cur     *Cursor
	tokens  []Token

	// identPos is where the pending identifier run began. It is the zero
	// Position when no identifier is pending.
	identPos Position
}

// New creates a Lexer for source using grammar g.
func New(g *Grammar, source string) *Lexer {
	return &Lexer{
		grammar: g,
		cur:     NewCursor(source),
	}
}

// Tokenize splits text into tokens using g.
func (g *Grammar) Tokenize(text string) ([]Token, error) {
	return New(g, text).Run()
}

// Run tokenizes the whole input. On failure it returns a nil slice and an
// *Error locating the problem.
func (l *Lexer) Run() ([]Token, error) {
	src := l.cur.Source()

	for l.cur.Offset < len(src) {
		matched, err := l.step()
		if err != nil {
			return nil, l.wrap(err)
		}
		if !matched {
			// Anything unclaimed is part of an identifier.
			if !l.identPos.IsValid() {
				l.identPos = l.cur.Position()
			}
			l.cur.Offset++
		}
	}
	l.flush()

	tracer().Debugf("%s: %d bytes, %d tokens", l.grammar.Name, len(src), len(l.tokens))
	return l.tokens, nil
}

// step tries every rule at the cursor and emits at most one token.
func (l *Lexer) step() (bool, error) {
	src := l.cur.Source()
	idx := l.cur.Offset
	// Snapshot before any rule runs: block comments advance the line counter.
	pos := l.cur.Position()

	n, err := l.grammar.commentRule().Match(src, idx, l.cur)
	if err != nil {
		return false, err
	}
	if n > 0 {
		l.emit(TokenComment, pos, n)
		return true, nil
	}

	if n, _ = Newline.Match(src, idx, l.cur); n > 0 {
		l.emit(TokenNewline, pos, n)
		l.cur.Newline(l.cur.Offset)
		return true, nil
	}

	if n, _ = Whitespace.Match(src, idx, l.cur); n > 0 {
		l.emit(TokenWhitespace, pos, n)
		return true, nil
	}

	if l.grammar.IsSpecial(src[idx]) {
		l.emit(TokenSpecial, pos, 1)
		return true, nil
	}

	if !l.identPos.IsValid() {
		n, err = l.grammar.numberRule().Match(src, idx, l.cur)
		if err != nil {
			return false, err
		}
		if n > 0 {
			l.emit(TokenNumber, pos, n)
			return true, nil
		}
	}

	n, err = l.grammar.stringRule().Match(src, idx, l.cur)
	if err != nil {
		return false, err
	}
	if n > 0 {
		l.emit(TokenString, pos, n)
		return true, nil
	}

	return false, nil
}

// emit flushes any pending identifier, appends a token of n bytes starting
// at pos and moves the cursor past it.
func (l *Lexer) emit(typ TokenType, pos Position, n int) {
	l.flush()

	src := l.cur.Source()
	end := pos.Offset + n
	if end > len(src) {
		end = len(src)
	}
	l.tokens = append(l.tokens, Token{
		Type:     typ,
		Text:     src[pos.Offset:end],
		Position: pos,
	})
	l.cur.Offset = end
}

// flush emits the pending identifier run, if any, ending at the cursor.
func (l *Lexer) flush() {
	if !l.identPos.IsValid() {
		return
	}
	l.tokens = append(l.tokens, Token{
		Type:     TokenIdentifier,
		Text:     l.cur.Source()[l.identPos.Offset:l.cur.Offset],
		Position: l.identPos,
	})
	l.identPos = Position{}
}

// wrap makes sure rule failures surface as *Error.
func (l *Lexer) wrap(err error) error {
	var lexErr *Error
	if errors.As(err, &lexErr) {
		return err
	}
	return l.cur.Errorf(err, l.cur.Offset, err.Error())
}
