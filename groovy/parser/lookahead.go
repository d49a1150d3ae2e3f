package parser

import (
	"bytes"

	"github.com/dhamidi/groovy/groovy/lexer"
)

// Lookahead runs rule and then rewinds the stream and the tree to where
// they were, whatever the rule returned.
func Lookahead(s *Session, level int, rule Rule) bool {
	state := s.b.Save()
	defer s.b.Rollback(state)
	return rule(s, level+1)
}

// CastOperandCheck decides whether a parenthesized group at the current
// position can be the operand of a cast. Anything not starting with '(' can.
// A group can when its closing parenthesis comes before any top-level comma.
func CastOperandCheck(s *Session, level int) bool {
	return !s.at(lexer.TokenLParen) || Lookahead(s, level, castOperandGroup)
}

func castOperandGroup(s *Session, level int) bool {
	depth := 0
	for !s.b.EOF() {
		s.b.Advance()
		switch s.b.TokenKind() {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			if depth == 0 {
				return true
			}
			depth--
		case lexer.TokenComma:
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

// NewLine reports whether a line break separates the previous raw token
// from the current one.
func NewLine(s *Session, level int) bool {
	s.b.EOF()
	prev := s.b.RawTokenStart(-1)
	current := s.b.RawTokenStart(0)
	if prev >= current {
		return false
	}
	return bytes.IndexByte(s.b.Text()[prev:current], '\n') >= 0
}

func NoNewLine(s *Session, level int) bool {
	return !NewLine(s, level)
}
