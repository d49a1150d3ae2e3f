// Package grammar holds the EBNF description of the Groovy subset accepted
// by the parser, and helpers to load and inspect EBNF grammars.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Start is the production a Groovy source file is derived from.
const Start = "File"

//go:embed groovy.ebnf
var source []byte

// Source returns the text of the embedded grammar.
func Source() []byte {
	return source
}

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	return Parse("groovy.ebnf", bytes.NewReader(source), Start)
}

// Parse reads a grammar from r. When start is not empty the grammar is also
// verified: every production must be defined and reachable from start.
func Parse(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, err
	}
	return g, nil
}

// Errors splits an error returned by Parse into its individual messages.
func Errors(err error) []string {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		msgs = append(msgs, fmt.Sprint(v.Index(i).Interface()))
	}
	return msgs
}

// IsLexical reports whether name is a lexical production. Lexical
// productions start with a lower case letter.
func IsLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// Productions returns the production names of g in sorted order.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Terminals returns the distinct literal tokens used by the syntactic
// productions of g, in sorted order.
func Terminals(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if IsLexical(name) {
			continue
		}
		collectTokens(prod.Expr, seen)
	}
	result := make([]string, 0, len(seen))
	for tok := range seen {
		result = append(result, tok)
	}
	sort.Strings(result)
	return result
}

func collectTokens(expr ebnf.Expression, seen map[string]bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		seen[e.String] = true
	case ebnf.Sequence:
		for _, item := range e {
			collectTokens(item, seen)
		}
	case ebnf.Alternative:
		for _, alt := range e {
			collectTokens(alt, seen)
		}
	case *ebnf.Repetition:
		collectTokens(e.Body, seen)
	case *ebnf.Option:
		collectTokens(e.Body, seen)
	case *ebnf.Group:
		collectTokens(e.Body, seen)
	}
}
