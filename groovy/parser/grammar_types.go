package parser

import (
	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

func parseIdentifier(s *Session, level int) bool {
	return s.consume(lexer.TokenIdent)
}

// parseTypeElement parses a primitive or class type with optional array
// dimensions.
func parseTypeElement(s *Session, level int) bool {
	m := s.b.Mark()
	switch {
	case ParsePrimitiveType(s, level):
		SetTypeWasPrimitive(s, level)
		m.Done(tree.KindPrimitiveType)
	case parseCodeReference(s, level+1):
		m.Done(tree.KindClassType)
	default:
		m.Drop()
		return false
	}
	for s.at(lexer.TokenLBracket) && s.b.LookAhead(1) == lexer.TokenRBracket {
		m = m.Precede()
		s.b.Advance()
		s.b.Advance()
		m.Done(tree.KindArrayType)
	}
	return true
}

// parseCodeReference parses a possibly qualified, possibly parameterized
// class reference. Each segment wraps the previous one.
func parseCodeReference(s *Session, level int) bool {
	if !s.at(lexer.TokenIdent) {
		return false
	}
	m := s.b.Mark()
	CodeReferenceIdentifier(s, level, parseIdentifier)
	parseTypeArgumentsOpt(s, level)
	m.Done(tree.KindCodeReference)
	for s.at(lexer.TokenDot) && s.b.LookAhead(1) == lexer.TokenIdent {
		m = m.Precede()
		s.b.Advance()
		CodeReferenceIdentifier(s, level, parseIdentifier)
		SetRefWasQualified(s, level)
		parseTypeArgumentsOpt(s, level)
		m.Done(tree.KindCodeReference)
	}
	return true
}

func parseTypeArgumentsOpt(s *Session, level int) {
	if IsQualifiedName(s, level) || !s.at(lexer.TokenLT) {
		return
	}
	if parseTypeArguments(s, level+1) {
		SetRefHadTypeArguments(s, level)
	}
}

func parseTypeArguments(s *Session, level int) bool {
	return s.attempt(func() bool {
		m := s.b.Mark()
		s.b.Advance()
		if s.at(lexer.TokenGT) {
			if !IsDiamondAllowed(s, level) {
				return false
			}
			s.b.Advance()
			m.Done(tree.KindTypeArgumentList)
			return true
		}
		ok := AnyTypeElement(s, level, parseTypeArgument)
		for ok && s.at(lexer.TokenComma) {
			s.b.Advance()
			ok = AnyTypeElement(s, level, parseTypeArgument)
		}
		if !ok || !s.consume(lexer.TokenGT) {
			return false
		}
		m.Done(tree.KindTypeArgumentList)
		return true
	})
}

func parseTypeArgument(s *Session, level int) bool {
	if !s.at(lexer.TokenQuestion) {
		return parseTypeElement(s, level+1)
	}
	m := s.b.Mark()
	s.b.Advance()
	if s.at(lexer.TokenExtends) || s.at(lexer.TokenSuper) {
		s.b.Advance()
		if !parseTypeElement(s, level+1) {
			m.Drop()
			return false
		}
	}
	m.Done(tree.KindWildcardType)
	return true
}
