// Package lexer provides a grammar-driven tokenizer. Source text is partitioned
// into a flat, lossless sequence of classified tokens (newline, whitespace,
// comment, number, string, special, identifier) using a Grammar looked up by a
// short key such as a file extension.
package lexer

import (
	"strconv"
	"strings"
)

// Position represents a location in the source text.
//
// Line and Column are 1-based. Column counts bytes from the start of the line,
// so a tab or a multi-byte character each advance it by their encoded length.
// Offset is the 0-based byte offset into the source.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsValid reports whether the position has a line number.
// The zero Position is invalid.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// PositionOf computes the position of offset within src from scratch: the
// line is one more than the number of '\n' bytes before offset and the column
// is the distance from the last of them.
//
// Offsets outside src are clamped.
func PositionOf(src string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	head := src[:offset]
	lineStart := strings.LastIndexByte(head, '\n') + 1
	return Position{
		Offset: offset,
		Line:   1 + strings.Count(head, "\n"),
		Column: offset - lineStart + 1,
	}
}

// Cursor is the mutable scanning state threaded through every Rule.
//
// The engine owns the cursor and advances Offset between matches. Rules that
// consume embedded newlines without producing a newline token (block
// comments) call Newline so that positions after the construct stay correct.
type Cursor struct {
	// src is the complete text being tokenized.
	src string

	// Offset is the byte offset currently being examined.
	Offset int

	// Line is the current 1-based line number.
	Line int

	// LineStart is the byte offset where the current line began.
	// column = offset - LineStart + 1
	LineStart int
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{
		src:       src,
		Offset:    0,
		Line:      1,
		LineStart: 0,
	}
}

// Source returns the text being scanned.
func (c *Cursor) Source() string {
	return c.src
}

// Position returns the position of the cursor's current offset.
func (c *Cursor) Position() Position {
	return c.PositionAt(c.Offset)
}

// PositionAt returns the position of offset assuming it lies on the current
// line.
func (c *Cursor) PositionAt(offset int) Position {
	return Position{
		Offset: offset,
		Line:   c.Line,
		Column: offset - c.LineStart + 1,
	}
}

// Newline records that a line ends at next, the offset of the first byte of
// the following line.
func (c *Cursor) Newline(next int) {
	c.Line++
	c.LineStart = next
}

// Errorf builds a scan error of the given kind located at offset. The row and
// column are computed from the source text rather than the cursor's
// counters.
func (c *Cursor) Errorf(kind error, offset int, msg string) *Error {
	return newError(kind, msg, PositionOf(c.src, offset))
}
