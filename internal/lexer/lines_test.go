package lexer

import (
	"reflect"
	"testing"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		keepNewlines bool
		want         [][]string
	}{
		{"empty input", "", false, nil},
		{"empty input keeping newlines", "", true, nil},
		{"single line", "a b", false, [][]string{{"a", " ", "b"}}},
		{"trailing newline dropped", "a\n", false, [][]string{{"a"}}},
		{"trailing newline kept", "a\n", true, [][]string{{"a", "\n"}}},
		{"final line without newline", "a\nb", false, [][]string{{"a"}, {"b"}}},
		{"only newlines", "\n\r\n", false, [][]string{{}, {}}},
		{"only newlines kept", "\n\r\n", true, [][]string{{"\n"}, {"\r\n"}}},
		{"blank line in the middle", "a\n\nb\n", false, [][]string{{"a"}, {}, {"b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Group(mustTokenize(t, tt.source, "c"), tt.keepNewlines)

			var got [][]string
			for _, line := range lines {
				texts := []string{}
				for _, tok := range line {
					texts = append(texts, tok.Text)
				}
				got = append(got, texts)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Group() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroup_IncludeDirectives(t *testing.T) {
	lines, err := TokenizeLines("#include <stdio.h>\n#include \"myfile.h\"\n", false, "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	expectTokens(t, lines[0], []tok{
		{TokenSpecial, "#"},
		{TokenIdentifier, "include"},
		{TokenWhitespace, " "},
		{TokenSpecial, "<"},
		{TokenIdentifier, "stdio"},
		{TokenSpecial, "."},
		{TokenIdentifier, "h"},
		{TokenSpecial, ">"},
	})
	expectTokens(t, lines[1], []tok{
		{TokenSpecial, "#"},
		{TokenIdentifier, "include"},
		{TokenWhitespace, " "},
		{TokenString, `"myfile.h"`},
	})

	if lines[1][3].Line() != 2 || lines[1][3].Column() != 10 {
		t.Errorf("string at %v, want 2:10", lines[1][3].Position)
	}
}

func TestGroup_FlattenRestoresTokens(t *testing.T) {
	for _, source := range corpus {
		tokens := mustTokenize(t, source, "c")
		flat := Flatten(Group(tokens, true))
		if len(tokens) == 0 && len(flat) == 0 {
			continue
		}
		if !reflect.DeepEqual(flat, tokens) {
			t.Errorf("%q: Flatten(Group(tokens, true)) differs from tokens", source)
		}
	}
}

func TestSignificant(t *testing.T) {
	tokens := mustTokenize(t, "a /* c */ b // d\n;", "c")
	expectTokens(t, Significant(tokens), []tok{
		{TokenIdentifier, "a"},
		{TokenIdentifier, "b"},
		{TokenSpecial, ";"},
	})
}
