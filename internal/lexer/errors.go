package lexer

import (
	"errors"
	"fmt"
)

// Error kinds. An *Error unwraps to exactly one of these, so callers can
// test the condition with errors.Is and recover the location with errors.As.
var (
	// ErrUnknownGrammar means no grammar is registered for the requested key.
	ErrUnknownGrammar = errors.New("unknown grammar")

	// ErrUnterminatedComment means a block comment reached end of input.
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrUnterminatedString means a string literal reached end of input.
	ErrUnterminatedString = errors.New("unterminated string")
)

// Error is the single error type returned by Tokenize. Any such error means
// the whole input was rejected; no tokens accompany it.
type Error struct {
	Kind error
	Msg  string

	// Row and Col are the 1-based line and column of the failure.
	Row int
	Col int

	// Offset is the 0-based byte offset of the failure.
	Offset int
}

func newError(kind error, msg string, pos Position) *Error {
	return &Error{
		Kind:   kind,
		Msg:    msg,
		Row:    pos.Line,
		Col:    pos.Column,
		Offset: pos.Offset,
	}
}

// Error renders "row:col: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Row, e.Col, e.Msg)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Position returns the failure location.
func (e *Error) Position() Position {
	return Position{Offset: e.Offset, Line: e.Row, Column: e.Col}
}
