// Command plexer tokenizes a source file and prints its tokens, or with
// -includes, its #include lines.
//
// Usage:
//
//	plexer [-lexer key] [-all] [-keep-newlines] [-includes] [-trace level] <file>
//
// The grammar defaults to the one registered for the file's extension, and
// to the C++ grammar when the extension has none.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hassan/plexer/internal/directive"
	"github.com/hassan/plexer/internal/lexer"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	lexerFlag := flag.String("lexer", "", "grammar key (default: file extension)")
	allFlag := flag.Bool("all", false, "print whitespace tokens too")
	keepNewlines := flag.Bool("keep-newlines", false, "print newline tokens at the end of each line")
	includesFlag := flag.Bool("includes", false, "print #include lines only")
	traceFlag := flag.String("trace", "error", "trace level for diagnostics: error, info or debug")
	flag.Parse()

	installTracing(*traceFlag, os.Stderr)

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open file '%s' for reading: %v\n", filename, err)
		os.Exit(1)
	}

	key := *lexerFlag
	if key == "" {
		key = grammarFor(filename)
	}

	if *includesFlag {
		err = printIncludes(os.Stdout, string(source), key)
	} else {
		err = printTokens(os.Stdout, string(source), key, *keepNewlines, *allFlag)
	}
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			fmt.Fprintf(os.Stderr, "%s:%v\n", filename, err)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		}
		os.Exit(1)
	}
}

// grammarFor picks the grammar key for filename: its extension if a grammar
// is registered for it, lexer.DefaultKey otherwise.
func grammarFor(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if _, err := lexer.Resolve(ext); err == nil {
		return ext
	}
	return lexer.DefaultKey
}

func printTokens(w io.Writer, source, key string, keepNewlines, all bool) error {
	lines, err := lexer.TokenizeLines(source, keepNewlines, key)
	if err != nil {
		return err
	}
	for _, line := range lines {
		for _, tok := range line {
			if tok.Type == lexer.TokenWhitespace && !all {
				continue
			}
			fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line(), tok.Column(), tok.Type, tok.Text)
		}
	}
	return nil
}

func printIncludes(w io.Writer, source, key string) error {
	includes, err := directive.Includes(source, key)
	if err != nil {
		return err
	}
	for _, inc := range includes {
		fmt.Fprintln(w, inc.Text())
	}
	return nil
}

// installTracing routes every tracer selected with tracing.Select to w,
// at the given level.
func installTracing(level string, w io.Writer) {
	sel := &traceSelector{
		level:   tracing.TraceLevelFromString(level),
		out:     w,
		tracers: make(map[string]tracing.Trace),
	}
	tracing.SetTraceSelector(sel)
}

type traceSelector struct {
	mu      sync.Mutex
	level   tracing.TraceLevel
	out     io.Writer
	tracers map[string]tracing.Trace
}

func (s *traceSelector) Select(key string) tracing.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tracers[key]; ok {
		return t
	}
	t := gologadapter.New()
	t.SetTraceLevel(s.level)
	t.SetOutput(s.out)
	s.tracers[key] = t
	return t
}
