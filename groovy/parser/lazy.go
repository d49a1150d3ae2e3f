package parser

import (
	"errors"

	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

var ErrBlockNotParseable = errors.New("block is not parseable")

// ParseBlockLazy parses a brace-delimited block. In deep mode it runs deep.
// Otherwise it skips to the matching closing brace and collapses the block
// into an opaque leaf of kind, to be expanded with ExpandLazyBlock.
func ParseBlockLazy(s *Session, level int, deep Rule, kind tree.Kind) bool {
	if s.deep {
		return deep(s, level+1)
	}
	if !s.at(lexer.TokenLBrace) {
		return false
	}
	start := s.b.Token().Span.Start
	m := s.b.Mark()
	s.b.Advance()
	depth := 1
	for depth > 0 && !s.b.EOF() {
		switch s.b.TokenKind() {
		case lexer.TokenLBrace:
			depth++
		case lexer.TokenRBrace:
			depth--
		}
		s.b.Advance()
	}
	m.Done(kind)
	CollapseToToken(s, m, kind)
	if depth > 0 {
		s.log.Debugf("unterminated block at %s", start)
		s.b.Error(Message("block.not.closed"))
	} else {
		s.log.Debugf("collapsed block at %s", start)
	}
	return true
}

// ExpandLazyBlock deep-parses the text of a collapsed block. Spans in the
// returned tree are relative to text.
func ExpandLazyBlock(text []byte, opts ...Option) (*tree.Node, error) {
	if !IsBlockParseable(text) {
		return nil, ErrBlockNotParseable
	}
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.deep = true
	s := p.newSession(text)
	s.log.Debugf("expanding block of %d bytes", len(text))
	parseBlock(s, 0)
	for !s.b.EOF() {
		UnexpectedAny(s, 0, "unexpected.token")
	}
	return s.b.Tree()
}
