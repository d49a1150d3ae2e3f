package parser

import (
	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

var modifierTokens = lexer.NewTokenSet(
	lexer.TokenPublic, lexer.TokenPrivate, lexer.TokenProtected,
	lexer.TokenStatic, lexer.TokenFinal, lexer.TokenAbstract,
	lexer.TokenSynchronized, lexer.TokenTransient, lexer.TokenVolatile,
	lexer.TokenNative,
)

func parseFile(s *Session, level int) bool {
	m := s.b.Mark()
	parseStatements(s, level+1, lexer.TokenEOF)
	m.Done(tree.KindFile)
	return true
}

// parseStatements parses separated statements up to closer or end of input.
// Input that does not start a statement is absorbed one token at a time.
func parseStatements(s *Session, level int, closer lexer.TokenKind) {
	for {
		for parseSeparator(s, level) {
		}
		if s.b.EOF() || s.at(closer) {
			return
		}
		if !parseStatement(s, level) {
			UnexpectedAny(s, level, "unexpected.token")
			ClearError(s, level)
			continue
		}
		if !atStatementEnd(s, level, closer) {
			Unexpected(s, level, restOfStatement(closer), "separator.expected")
			ClearError(s, level)
		}
	}
}

func parseSeparator(s *Session, level int) bool {
	if s.at(lexer.TokenSemicolon) {
		s.b.Advance()
		return true
	}
	return ExtendedSeparator(s, level)
}

func atStatementEnd(s *Session, level int, closer lexer.TokenKind) bool {
	return s.b.EOF() || s.at(closer) || s.at(lexer.TokenSemicolon) ||
		NewLine(s, level) || s.dialect.IsExtendedSeparator(s, level)
}

func restOfStatement(closer lexer.TokenKind) Rule {
	return func(s *Session, level int) bool {
		consumed := false
		for !s.b.EOF() && !s.at(closer) && !s.at(lexer.TokenSemicolon) {
			if consumed && NewLine(s, level) {
				break
			}
			s.b.Advance()
			consumed = true
		}
		return consumed
	}
}

func parseStatement(s *Session, level int) bool {
	if !s.guard(level, "statement") {
		return false
	}
	return Choice(s, level+1,
		ExtendedStatement,
		parsePackageDefinition,
		parseImportStatement,
		parseClassDefinition,
		parseForStatement,
		parseReturnStatement,
		parseDeclarationStatement,
		parseCommandExpression,
	)
}

func parsePackageDefinition(s *Session, level int) bool {
	if !s.at(lexer.TokenPackage) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if !QualifiedName(s, level, parseCodeReference) {
		AddVariant(s, level, "qualified name")
		ReportError(s, level)
	}
	m.Done(tree.KindPackageDefinition)
	return true
}

func parseImportStatement(s *Session, level int) bool {
	if !s.at(lexer.TokenImport) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if s.at(lexer.TokenStatic) {
		s.b.Advance()
	}
	switch {
	case !QualifiedName(s, level, parseCodeReference):
		AddVariant(s, level, "qualified name")
		ReportError(s, level)
	case s.at(lexer.TokenDot) && s.b.LookAhead(1) == lexer.TokenStar:
		s.b.Advance()
		s.b.Advance()
	case s.at(lexer.TokenAs):
		s.b.Advance()
		s.expect(level, lexer.TokenIdent)
	}
	m.Done(tree.KindImportStatement)
	return true
}

func peekPastModifiers(s *Session) lexer.TokenKind {
	n := 0
	for modifierTokens.Contains(s.b.LookAhead(n)) {
		n++
	}
	return s.b.LookAhead(n)
}

func parseModifiers(s *Session, level int) bool {
	if !s.atAny(modifierTokens) {
		return false
	}
	m := s.b.Mark()
	for s.atAny(modifierTokens) {
		s.b.Advance()
	}
	m.Done(tree.KindModifiers)
	return true
}

func parseClassDefinition(s *Session, level int) bool {
	if peekPastModifiers(s) != lexer.TokenClass {
		return false
	}
	m := s.b.Mark()
	parseModifiers(s, level)
	s.b.Advance()
	if !ClassIdentifier(s, level) {
		AddVariant(s, level, "class name")
		ReportError(s, level)
		m.Done(tree.KindClassDefinition)
		return true
	}
	defer PopClassIdentifier(s, level)
	if s.at(lexer.TokenExtends) {
		e := s.b.Mark()
		s.b.Advance()
		if !parseTypeElement(s, level+1) {
			AddVariant(s, level, "type")
			ReportError(s, level)
		}
		e.Done(tree.KindExtendsClause)
	}
	if !parseClassBody(s, level+1) {
		AddVariant(s, level, "class body")
		ReportError(s, level)
	}
	m.Done(tree.KindClassDefinition)
	return true
}

func parseClassBody(s *Session, level int) bool {
	if !s.at(lexer.TokenLBrace) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	s.Section(level, "class body", func() bool {
		for {
			for s.at(lexer.TokenSemicolon) {
				s.b.Advance()
			}
			if s.b.EOF() || s.at(lexer.TokenRBrace) {
				return true
			}
			if !parseMember(s, level+1) {
				UnexpectedAny(s, level, "class.member.expected")
				ClearError(s, level)
			}
		}
	})
	s.expect(level, lexer.TokenRBrace)
	m.Done(tree.KindClassBody)
	return true
}

func parseMember(s *Session, level int) bool {
	if !s.guard(level, "member") {
		return false
	}
	return Choice(s, level,
		parseClassDefinition,
		parseConstructor,
		parseMethod,
		parseUntypedMethod,
		parseField,
	)
}

func parseConstructor(s *Session, level int) bool {
	return WithProtectedLastVariantPos(s, level, func(s *Session, level int) bool {
		return s.attempt(func() bool {
			m := s.b.Mark()
			parseModifiers(s, level)
			if !ConstructorIdentifier(s, level) || !s.at(lexer.TokenLParen) {
				return false
			}
			parseParameterList(s, level+1)
			parseMethodBody(s, level+1)
			m.Done(tree.KindConstructor)
			return true
		})
	})
}

func parseMethod(s *Session, level int) bool {
	return WithProtectedLastVariantPos(s, level, func(s *Session, level int) bool {
		return s.attempt(func() bool {
			m := s.b.Mark()
			parseModifiers(s, level)
			if s.at(lexer.TokenDef) {
				s.b.Advance()
			} else if !parseTypeElement(s, level+1) {
				return false
			}
			if !s.at(lexer.TokenIdent) || s.b.LookAhead(1) != lexer.TokenLParen {
				return false
			}
			s.b.Advance()
			parseParameterList(s, level+1)
			if s.at(lexer.TokenLBrace) {
				parseMethodBody(s, level+1)
			}
			m.Done(tree.KindMethod)
			return true
		})
	})
}

// parseUntypedMethod accepts a method written without a return type. Without
// modifiers this is an error, and a likely misspelled constructor.
func parseUntypedMethod(s *Session, level int) bool {
	hasModifiers := false
	parsed := s.attempt(func() bool {
		m := s.b.Mark()
		hasModifiers = parseModifiers(s, level)
		if !s.at(lexer.TokenIdent) || s.b.LookAhead(1) != lexer.TokenLParen {
			return false
		}
		s.b.Advance()
		parseParameterList(s, level+1)
		if s.at(lexer.TokenLBrace) {
			parseMethodBody(s, level+1)
		}
		m.Done(tree.KindMethod)
		return true
	})
	if !parsed || hasModifiers {
		return parsed
	}
	return Error(s, level, "method.return.type.expected")
}

func parseField(s *Session, level int) bool {
	return WithProtectedLastVariantPos(s, level, func(s *Session, level int) bool {
		return s.attempt(func() bool {
			m := s.b.Mark()
			parseModifiers(s, level)
			if s.at(lexer.TokenDef) {
				s.b.Advance()
			} else if !parseTypeElement(s, level+1) {
				return false
			}
			if !parseVariables(s, level+1) {
				return false
			}
			m.Done(tree.KindField)
			return true
		})
	})
}

func parseMethodBody(s *Session, level int) bool {
	if ParseBlockLazy(s, level, parseBlock, tree.KindLazyBlock) {
		return true
	}
	AddVariant(s, level, "method body")
	return ReportError(s, level)
}

func parseBlock(s *Session, level int) bool {
	if !s.at(lexer.TokenLBrace) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	parseStatements(s, level+1, lexer.TokenRBrace)
	s.expect(level, lexer.TokenRBrace)
	m.Done(tree.KindBlock)
	return true
}

func parseParameterList(s *Session, level int) bool {
	if !s.at(lexer.TokenLParen) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if !s.at(lexer.TokenRParen) {
		for {
			if !parseParameter(s, level+1) {
				AddVariant(s, level, "parameter")
				ReportError(s, level)
				break
			}
			if !s.at(lexer.TokenComma) {
				break
			}
			s.b.Advance()
		}
	}
	s.expect(level, lexer.TokenRParen)
	m.Done(tree.KindParameterList)
	return true
}

func parseParameter(s *Session, level int) bool {
	return s.attempt(func() bool {
		m := s.b.Mark()
		if !parseParameterHead(s, level) {
			return false
		}
		if s.at(lexer.TokenAssign) {
			s.b.Advance()
			if !parseExpression(s, level+1) {
				AddVariant(s, level, "expression")
				ReportError(s, level)
			}
		}
		m.Done(tree.KindParameter)
		return true
	})
}

// parseParameterHead parses an optionally typed name.
func parseParameterHead(s *Session, level int) bool {
	if s.at(lexer.TokenDef) {
		s.b.Advance()
	} else {
		s.attempt(func() bool {
			return parseTypeElement(s, level+1) && s.at(lexer.TokenIdent)
		})
	}
	return s.consume(lexer.TokenIdent)
}

func parseForStatement(s *Session, level int) bool {
	if !s.at(lexer.TokenFor) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if s.expect(level, lexer.TokenLParen) {
		if !ParseTailLeftFlat(s, level+1, parseForInHead, parseForInTail) {
			AddVariant(s, level, "for clause")
			ReportError(s, level)
		}
		s.expect(level, lexer.TokenRParen)
	}
	if !parseBlock(s, level+1) && !parseStatement(s, level+1) {
		AddVariant(s, level, "statement")
		ReportError(s, level)
	}
	m.Done(tree.KindForStatement)
	return true
}

func parseForInHead(s *Session, level int) bool {
	return s.attempt(func() bool {
		m := s.b.Mark()
		if !parseParameterHead(s, level) {
			return false
		}
		m.Done(tree.KindParameter)
		return true
	})
}

func parseForInTail(s *Session, level int) bool {
	m := s.b.Mark()
	if !s.consume(lexer.TokenIn) && !s.consume(lexer.TokenColon) {
		m.Drop()
		return false
	}
	if !parseExpression(s, level+1) {
		AddVariant(s, level, "expression")
		ReportError(s, level)
	}
	m.Done(tree.KindForInClause)
	return true
}

func parseReturnStatement(s *Session, level int) bool {
	if !s.at(lexer.TokenReturn) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if !atStatementEnd(s, level, lexer.TokenRBrace) && !parseCommandExpression(s, level+1) {
		AddVariant(s, level, "expression")
		ReportError(s, level)
	}
	m.Done(tree.KindReturnStatement)
	return true
}

func parseDeclarationStatement(s *Session, level int) bool {
	return WithProtectedLastVariantPos(s, level, parseVariableDeclaration)
}

// parseVariableDeclaration parses `def x`, `final x` or `T x`. A bare
// reference type is only accepted when it is certainly a type or is
// capitalized, so `foo bar` stays a command expression.
func parseVariableDeclaration(s *Session, level int) bool {
	return s.attempt(func() bool {
		m := s.b.Mark()
		hasModifiers := parseModifiers(s, level)
		switch {
		case s.at(lexer.TokenDef):
			s.b.Advance()
		case parseDeclarationType(s, level+1):
		case hasModifiers && s.at(lexer.TokenIdent):
		default:
			return false
		}
		if !parseVariables(s, level+1) {
			return false
		}
		m.Done(tree.KindVariableDeclaration)
		return true
	})
}

func parseDeclarationType(s *Session, level int) bool {
	return s.attempt(func() bool {
		return CapitalizedTypeElement(s, level, parseDefinitelyType, identifierFollows)
	})
}

func parseDefinitelyType(s *Session, level int) bool {
	return DefinitelyTypeElement(s, level, parseTypeElement, RefWasCapitalized)
}

func identifierFollows(s *Session, level int) bool {
	return s.at(lexer.TokenIdent)
}

func parseVariables(s *Session, level int) bool {
	if !parseVariable(s, level) {
		return false
	}
	for s.at(lexer.TokenComma) {
		s.b.Advance()
		if !parseVariable(s, level) {
			AddVariant(s, level, "variable")
			ReportError(s, level)
			break
		}
	}
	return true
}

func parseVariable(s *Session, level int) bool {
	if !s.at(lexer.TokenIdent) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if s.at(lexer.TokenAssign) {
		s.b.Advance()
		if !parseCommandExpression(s, level+1) {
			AddVariant(s, level, "expression")
			ReportError(s, level)
		}
	}
	m.Done(tree.KindVariable)
	return true
}
