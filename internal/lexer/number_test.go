package lexer

import (
	"testing"
)

func TestNumberRule(t *testing.T) {
	tests := []struct {
		source string
		basic  int
		c      int
	}{
		{"2", 1, 1},
		{"42", 2, 2},
		{"-42", 3, 3},
		{".9", 2, 2},
		{".9e2", 4, 4},
		{"3.", 2, 2},
		{"3.14", 4, 4},
		{"1e10", 4, 4},
		{"1e-5", 4, 4},
		{"2.5e-3", 6, 6},
		{"2.5e-3f", 6, 7},
		{".9f", 2, 3},
		{".9F", 2, 3},
		{"-51UL", 3, 5},
		{"42u", 2, 3},
		{"42l", 2, 3},
		{"42lu", 2, 3},
		{"1.5L", 3, 3},
		{"1e5f", 3, 4},
		{"1e5UL", 3, 3},
		{"12abc", 2, 2},

		// Exponent marker without digits is left alone.
		{"2e", 1, 1},
		{"2e-", 1, 1},
		{"2E+1", 1, 1},
		{"2eu", 1, 1},

		// No exponent after a bare decimal point.
		{"3.e5", 2, 2},
		{"3.f", 2, 3},

		// No digits, no number.
		{"-", 0, 0},
		{".", 0, 0},
		{"-.", 0, 0},
		{"-e5", 0, 0},
		{"abc", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			cur := NewCursor(tt.source)

			n, err := BasicNumber.Match(tt.source, 0, cur)
			if err != nil {
				t.Fatalf("BasicNumber: unexpected error: %v", err)
			}
			if n != tt.basic {
				t.Errorf("BasicNumber consumed %d, want %d", n, tt.basic)
			}

			n, err = CNumber.Match(tt.source, 0, cur)
			if err != nil {
				t.Fatalf("CNumber: unexpected error: %v", err)
			}
			if n != tt.c {
				t.Errorf("CNumber consumed %d, want %d", n, tt.c)
			}
		})
	}
}

func TestNumberRule_MidInput(t *testing.T) {
	src := "x=15;"
	n, _ := CNumber.Match(src, 2, NewCursor(src))
	if n != 2 {
		t.Errorf("consumed %d, want 2", n)
	}
}
