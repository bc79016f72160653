package lexer

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'plexer.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("plexer.lexer")
}

// Grammar is the set of rules that defines how one language is tokenized.
//
// Comment, Number and String may be nil, which means the grammar has no
// such category. Newlines and whitespace are the same for every grammar and
// are not configurable. A Grammar must not be modified once registered.
type Grammar struct {
	// Name identifies the grammar in diagnostics.
	Name string

	Comment Rule
	Number  Rule
	String  Rule

	// Specials lists the characters that are always a token of their own.
	Specials string

	// IdentifierChars lists characters that belong to identifiers in this
	// language. It is informational: any character no rule claims becomes
	// part of an identifier.
	IdentifierChars string
}

// Basic is the grammar for plain text: numbers are recognized, everything
// else that isn't whitespace is an identifier.
var Basic = &Grammar{
	Name:   "basic",
	Number: BasicNumber,
}

func (g *Grammar) commentRule() Rule { return orNothing(g.Comment) }
func (g *Grammar) numberRule() Rule  { return orNothing(g.Number) }
func (g *Grammar) stringRule() Rule  { return orNothing(g.String) }

func orNothing(r Rule) Rule {
	if r == nil {
		return Nothing
	}
	return r
}

// IsSpecial reports whether ch is one of the grammar's special characters.
func (g *Grammar) IsSpecial(ch byte) bool {
	return strings.IndexByte(g.Specials, ch) >= 0
}

// Registry maps grammar keys to grammars. Keys are case-insensitive.
//
// A Registry is safe for concurrent use, though registration is expected to
// happen at startup and lookups afterwards.
type Registry struct {
	mu       sync.RWMutex
	grammars map[string]*Grammar
	warnings tracing.Trace
}

// NewRegistry returns an empty registry. Its warnings go to stderr.
func NewRegistry() *Registry {
	return &Registry{
		grammars: make(map[string]*Grammar),
		warnings: newWarningTrace(),
	}
}

// newWarningTrace returns a tracer which shows warnings whether or not a
// trace selector has been installed.
func newWarningTrace() tracing.Trace {
	t := gologadapter.New()
	t.SetTraceLevel(tracing.LevelInfo)
	return t
}

// SetWarnings replaces the tracer that receives the registry's warnings.
// A nil t silences them.
func (r *Registry) SetWarnings(t tracing.Trace) {
	if t == nil {
		t = tracing.NoOpTrace()
	}
	r.mu.Lock()
	r.warnings = t
	r.mu.Unlock()
}

// Register associates every key with g. A key that already has a grammar
// is overwritten and a warning is emitted; this is not an error.
func (r *Registry) Register(g *Grammar, keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range keys {
		key = strings.ToLower(key)
		if _, exists := r.grammars[key]; exists {
			r.warnings.Infof("WARNING: lexer for %q is being replaced by %q", key, g.Name)
		}
		r.grammars[key] = g
	}
}

// Resolve returns the grammar registered for key.
// It fails with an *Error of kind ErrUnknownGrammar if there is none.
func (r *Registry) Resolve(key string) (*Grammar, error) {
	key = strings.ToLower(key)

	r.mu.RLock()
	g, ok := r.grammars[key]
	r.mu.RUnlock()

	if !ok {
		tracer().Debugf("no lexer associated with %q", key)
		return nil, newError(ErrUnknownGrammar,
			"no lexer associated with '"+key+"', use Register",
			Position{Line: 1, Column: 1})
	}
	return g, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.grammars))
	for k := range r.grammars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tokenize tokenizes text with the grammar registered under key.
func (r *Registry) Tokenize(text, key string) ([]Token, error) {
	g, err := r.Resolve(key)
	if err != nil {
		return nil, err
	}
	return g.Tokenize(text)
}

// TokenizeLines tokenizes text and groups the tokens by line.
func (r *Registry) TokenizeLines(text string, keepNewlines bool, key string) ([][]Token, error) {
	tokens, err := r.Tokenize(text, key)
	if err != nil {
		return nil, err
	}
	return Group(tokens, keepNewlines), nil
}

// DefaultKey is the grammar key used when a caller has no better one.
const DefaultKey = "cpp"

// Default is the process-wide registry used by the package-level functions.
// It holds Basic under "" and "txt", and C under "c", "h", "cpp" and "hpp".
var Default = NewRegistry()

func init() {
	Default.Register(Basic, "", "txt")
	Default.Register(C, "c", "h", "cpp", "hpp")
}

// Register adds g to the default registry under every key.
func Register(g *Grammar, keys ...string) {
	Default.Register(g, keys...)
}

// Resolve looks key up in the default registry.
func Resolve(key string) (*Grammar, error) {
	return Default.Resolve(key)
}

// Tokenize tokenizes text with the grammar registered under key in the
// default registry.
func Tokenize(text, key string) ([]Token, error) {
	return Default.Tokenize(text, key)
}

// TokenizeLines tokenizes text with the default registry and groups the
// tokens by line.
func TokenizeLines(text string, keepNewlines bool, key string) ([][]Token, error) {
	return Default.TokenizeLines(text, keepNewlines, key)
}
