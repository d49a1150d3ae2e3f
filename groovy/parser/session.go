package parser

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

var log = commonlog.GetLogger("groovy.parser")

// maxRecursionLevel bounds rule nesting so pathological input fails with a
// diagnostic instead of exhausting the stack.
const maxRecursionLevel = 1000

// Rule is a grammar rule or hook argument. level is the current rule
// nesting depth.
type Rule func(s *Session, level int) bool

// Dialect supplies statements and separators beyond the built-in grammar.
type Dialect interface {
	ParseExtendedStatement(s *Session, level int) bool
	IsExtendedSeparator(s *Session, level int) bool
}

type noDialect struct{}

func (noDialect) ParseExtendedStatement(*Session, int) bool { return false }
func (noDialect) IsExtendedSeparator(*Session, int) bool    { return false }

// Session is the state of one parse: the tree builder plus the scoped flags,
// class name stack and error recovery frames that hooks read and write.
// A Session is owned by a single parse and is not safe for concurrent use.
type Session struct {
	b          *tree.Builder
	flags      Flags
	classNames []string
	left       tree.Marker
	errors     errorState
	deep       bool
	dialect    Dialect
	log        commonlog.Logger
}

// NewSession tokenizes text and prepares a session positioned at its first
// token.
func NewSession(text []byte, opts ...Option) *Session {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p.newSession(text)
}

func newSession(b *tree.Builder, deep bool, dialect Dialect, logger commonlog.Logger) *Session {
	if dialect == nil {
		dialect = noDialect{}
	}
	if logger == nil {
		logger = log
	}
	s := &Session{b: b, deep: deep, dialect: dialect, log: logger}
	s.errors.push("root")
	return s
}

func (s *Session) Builder() *tree.Builder {
	return s.b
}

func (s *Session) Flags() *Flags {
	return &s.flags
}

func (s *Session) IsDeep() bool {
	return s.deep
}

// CurrentClassName returns the innermost class being declared.
func (s *Session) CurrentClassName() (string, bool) {
	if len(s.classNames) == 0 {
		return "", false
	}
	return s.classNames[len(s.classNames)-1], true
}

func (s *Session) at(kind lexer.TokenKind) bool {
	return s.b.TokenKind() == kind
}

func (s *Session) atAny(set lexer.TokenSet) bool {
	return set.Contains(s.b.TokenKind())
}

// consume advances over kind. On a mismatch the token is recorded as an
// expected variant and nothing is consumed.
func (s *Session) consume(kind lexer.TokenKind) bool {
	if s.at(kind) {
		s.b.Advance()
		return true
	}
	s.errors.addVariant(s.b.RawTokenIndex(), "'"+kind.String()+"'")
	return false
}

// expect is consume followed by an error report on mismatch.
func (s *Session) expect(level int, kind lexer.TokenKind) bool {
	if s.consume(kind) {
		return true
	}
	ReportError(s, level)
	return false
}

// attempt runs fn speculatively. When fn fails the builder is rolled back,
// so markers fn left open need no cleanup, and errors it reported are
// forgotten.
func (s *Session) attempt(fn func() bool) bool {
	state := s.b.Save()
	f := s.errors.current()
	reportedAt := f.errorReportedAt
	if fn() {
		s.b.Commit(state)
		return true
	}
	s.b.Rollback(state)
	f.errorReportedAt = reportedAt
	return false
}

// guard reports whether level is within the recursion bound, emitting an
// error once when it is not.
func (s *Session) guard(level int, name string) bool {
	if level <= maxRecursionLevel {
		return true
	}
	s.log.Warningf("maximum recursion level reached in %s at %s", name, s.b.Token().Span.Start)
	s.b.Error(Message("maximum.recursion.level"))
	return false
}
