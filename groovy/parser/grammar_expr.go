package parser

import (
	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

var (
	literalTokens = lexer.NewTokenSet(
		lexer.TokenIntLiteral, lexer.TokenFloatLiteral,
		lexer.TokenStringLiteral, lexer.TokenGString,
		lexer.TokenTrue, lexer.TokenFalse, lexer.TokenNull,
	)
	prefixOperators = lexer.NewTokenSet(
		lexer.TokenMinus, lexer.TokenPlus, lexer.TokenNot, lexer.TokenBitNot,
		lexer.TokenIncrement, lexer.TokenDecrement,
	)
	logicalOperators        = lexer.NewTokenSet(lexer.TokenAnd, lexer.TokenOr)
	relationalOperators     = lexer.NewTokenSet(lexer.TokenLT, lexer.TokenLE, lexer.TokenGT, lexer.TokenGE, lexer.TokenIn)
	additiveOperators       = lexer.NewTokenSet(lexer.TokenPlus, lexer.TokenMinus)
	multiplicativeOperators = lexer.NewTokenSet(lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent, lexer.TokenPower)
	dereferenceOperators    = lexer.NewTokenSet(lexer.TokenDot, lexer.TokenSafeDot, lexer.TokenSpreadDot, lexer.TokenMethodPointer)
	commandTerminators      = lexer.NewTokenSet(
		lexer.TokenEOF, lexer.TokenSemicolon, lexer.TokenComma, lexer.TokenColon,
		lexer.TokenRParen, lexer.TokenRBracket, lexer.TokenRBrace, lexer.TokenArrow,
	)
)

func parseExpressionEntry(s *Session, level int) bool {
	if !parseCommandExpression(s, level+1) {
		AddVariant(s, level, "expression")
		ReportError(s, level)
	}
	if !s.b.EOF() {
		Unexpected(s, level, restOfInput, "unexpected.token")
	}
	return true
}

func restOfInput(s *Session, level int) bool {
	if s.b.EOF() {
		return false
	}
	for !s.b.EOF() {
		s.b.Advance()
	}
	return true
}

// parseCommandExpression parses an expression and, when it ends in a
// reference or call, the command arguments and segments that follow it on
// the same line.
func parseCommandExpression(s *Session, level int) bool {
	if !parseExpression(s, level+1) {
		return false
	}
	latest, ok := s.b.LatestDone()
	if !ok {
		return true
	}
	if k := latest.Kind(); k != tree.KindReferenceExpression && k != tree.KindMethodCallExpression {
		return true
	}
	for !NewLine(s, level) && !s.atAny(commandTerminators) && !s.dialect.IsExtendedSeparator(s, level) {
		if !ParseApplication(s, level, parseReferenceSegment, parseApplicationSegment, parseCallSegment, parseIndexSegment) {
			break
		}
	}
	return true
}

func parseReferenceSegment(s *Session, level int) bool {
	if !s.at(lexer.TokenIdent) {
		return false
	}
	latest, ok := s.b.LatestDone()
	if !ok {
		return false
	}
	m := latest.Precede()
	s.b.Advance()
	m.Done(tree.KindReferenceExpression)
	return true
}

func parseApplicationSegment(s *Session, level int) bool {
	return s.attempt(func() bool {
		var m tree.Marker
		if latest, ok := s.b.LatestDone(); ok {
			m = latest.Precede()
		} else {
			m = s.b.Mark()
		}
		if !ApplicationArguments(s, level, parseApplicationArgumentList) {
			return false
		}
		m.Done(tree.KindApplicationExpression)
		return true
	})
}

func parseApplicationArgumentList(s *Session, level int) bool {
	m := s.b.Mark()
	if !ParseArgument(s, level, parseArgumentExpression) {
		m.Drop()
		return false
	}
	for s.at(lexer.TokenComma) {
		s.b.Advance()
		if !ParseArgument(s, level, parseArgumentExpression) {
			AddVariant(s, level, "expression")
			ReportError(s, level)
			break
		}
	}
	m.Done(tree.KindArgumentList)
	return true
}

func parseCallSegment(s *Session, level int) bool {
	if !s.at(lexer.TokenLParen) && !s.at(lexer.TokenLBrace) {
		return false
	}
	latest, ok := s.b.LatestDone()
	if !ok {
		return false
	}
	return s.attempt(func() bool {
		m := latest.Precede()
		if !parseCallArguments(s, level) {
			return false
		}
		m.Done(tree.KindMethodCallExpression)
		return true
	})
}

func parseIndexSegment(s *Session, level int) bool {
	if !s.at(lexer.TokenLBracket) {
		return false
	}
	latest, ok := s.b.LatestDone()
	if !ok {
		return false
	}
	return s.attempt(func() bool {
		m := latest.Precede()
		if !parseIndexArguments(s, level) {
			return false
		}
		m.Done(tree.KindApplicationIndex)
		return true
	})
}

func parseExpression(s *Session, level int) bool {
	if !s.guard(level, "expression") {
		return false
	}
	return parseAssignment(s, level+1)
}

// parseAssignment is right associative; the right-hand side may itself be a
// command expression.
func parseAssignment(s *Session, level int) bool {
	if !parseBinary(s, level, parseEquality, logicalOperators, tree.KindLogicalExpression) {
		return false
	}
	if !s.atAny(lexer.AssignmentOperators) {
		return true
	}
	latest, _ := s.b.LatestDone()
	m := latest.Precede()
	AssignmentOperator(s, level)
	if !parseCommandExpression(s, level+1) {
		AddVariant(s, level, "expression")
		ReportError(s, level)
	}
	m.Done(tree.KindAssignmentExpression)
	return true
}

// parseEquality groups a flat run of equality operations to the left:
// each operator and right operand is parsed as its own node, which is then
// widened to start at the left operand.
func parseEquality(s *Session, level int) bool {
	if !parseRelational(s, level+1) {
		return false
	}
	for s.atAny(lexer.EqualityOperators) && NoNewLine(s, level) {
		MarkLeft(s, level)
		left := s.left
		ok := parseEqualityTail(s, level+1)
		s.left = left
		if !ok || !WrapLeft(s, level) {
			break
		}
	}
	return true
}

func parseEqualityTail(s *Session, level int) bool {
	m := s.b.Mark()
	if !EqualityOperator(s, level) {
		m.Drop()
		return false
	}
	if !parseRelational(s, level+1) {
		AddVariant(s, level, "expression")
		ReportError(s, level)
	}
	m.Done(tree.KindEqualityExpression)
	return true
}

func parseRelational(s *Session, level int) bool {
	if !parseBinary(s, level, parseAdditive, relationalOperators, tree.KindRelationalExpression) {
		return false
	}
	for (s.at(lexer.TokenInstanceof) || s.at(lexer.TokenAs)) && NoNewLine(s, level) {
		latest, _ := s.b.LatestDone()
		m := latest.Precede()
		s.b.Advance()
		if !parseTypeElement(s, level+1) {
			AddVariant(s, level, "type")
			ReportError(s, level)
		}
		m.Done(tree.KindRelationalExpression)
	}
	return true
}

func parseAdditive(s *Session, level int) bool {
	return parseBinary(s, level, parseMultiplicative, additiveOperators, tree.KindAdditiveExpression)
}

func parseMultiplicative(s *Session, level int) bool {
	return parseBinary(s, level, parseUnary, multiplicativeOperators, tree.KindMultiplicativeExpression)
}

// parseBinary parses a left associative chain of operand separated by ops.
// An operator at the start of a line ends the chain.
func parseBinary(s *Session, level int, operand Rule, ops lexer.TokenSet, kind tree.Kind) bool {
	if !operand(s, level+1) {
		return false
	}
	for s.atAny(ops) && NoNewLine(s, level) {
		latest, _ := s.b.LatestDone()
		m := latest.Precede()
		s.b.Advance()
		if !operand(s, level+1) {
			AddVariant(s, level, "expression")
			ReportError(s, level)
		}
		m.Done(kind)
	}
	return true
}

func parseUnary(s *Session, level int) bool {
	if !s.guard(level, "expression") {
		return false
	}
	if s.atAny(prefixOperators) {
		m := s.b.Mark()
		s.b.Advance()
		if !parseUnary(s, level+1) {
			AddVariant(s, level, "expression")
			ReportError(s, level)
		}
		m.Done(tree.KindUnaryExpression)
		return true
	}
	if s.at(lexer.TokenLParen) && parseCast(s, level+1) {
		return true
	}
	return parsePostfix(s, level+1)
}

// parseCast parses `(T) operand`. A reference type cast does not accept an
// operand starting with a sign or a bracket, which reads as arithmetic or
// indexing on a parenthesized expression instead.
func parseCast(s *Session, level int) bool {
	return s.attempt(func() bool {
		m := s.b.Mark()
		s.b.Advance()
		primitive := s.atAny(lexer.PrimitiveTypes)
		if !parseTypeElement(s, level+1) || !s.consume(lexer.TokenRParen) {
			return false
		}
		if NewLine(s, level) || !CastOperandCheck(s, level) {
			return false
		}
		if !primitive && (s.atAny(additiveOperators) || s.at(lexer.TokenLBracket)) {
			return false
		}
		if !parseUnary(s, level+1) {
			return false
		}
		m.Done(tree.KindCastExpression)
		return true
	})
}

func parsePostfix(s *Session, level int) bool {
	if !parsePrimary(s, level+1) {
		return false
	}
	for {
		latest, _ := s.b.LatestDone()
		switch {
		case s.atAny(dereferenceOperators):
			m := latest.Precede()
			s.b.Advance()
			if !s.consume(lexer.TokenIdent) && !ParseKeyword(s, level) && !s.consume(lexer.TokenStringLiteral) {
				AddVariant(s, level, "identifier")
				ReportError(s, level)
			}
			m.Done(tree.KindReferenceExpression)
		case s.at(lexer.TokenLParen) && NoNewLine(s, level):
			m := latest.Precede()
			parseCallArguments(s, level+1)
			m.Done(tree.KindMethodCallExpression)
		case s.at(lexer.TokenLBrace) && isCallee(latest.Kind()):
			m := latest.Precede()
			if !ClosureArgumentSeparator(s, level, parseClosureArguments) {
				m.Drop()
				return true
			}
			m.Done(tree.KindMethodCallExpression)
		case s.at(lexer.TokenLBracket) && NoNewLine(s, level):
			if !s.attempt(func() bool {
				m := latest.Precede()
				if !parseIndexArguments(s, level+1) {
					return false
				}
				m.Done(tree.KindIndexExpression)
				return true
			}) {
				return true
			}
		default:
			return true
		}
	}
}

func isCallee(kind tree.Kind) bool {
	return kind == tree.KindReferenceExpression || kind == tree.KindMethodCallExpression
}

// parseCallArguments parses a parenthesized argument list followed by any
// number of closure arguments. At least one of the two must be present.
func parseCallArguments(s *Session, level int) bool {
	parsed := false
	if s.at(lexer.TokenLParen) {
		parsed = NotApplicationArguments(s, level, parseParenArguments)
	}
	if s.at(lexer.TokenLBrace) && ClosureArgumentSeparator(s, level, parseClosureArguments) {
		parsed = true
	}
	return parsed
}

func parseClosureArguments(s *Session, level int) bool {
	if !parseClosure(s, level+1) {
		return false
	}
	for s.at(lexer.TokenLBrace) && NoNewLine(s, level) {
		parseClosure(s, level+1)
	}
	return true
}

func parseParenArguments(s *Session, level int) bool {
	if !s.at(lexer.TokenLParen) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	if !s.at(lexer.TokenRParen) {
		for {
			if !ParseArgument(s, level, parseArgumentExpression) {
				AddVariant(s, level, "expression")
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
	m.Done(tree.KindArgumentList)
	return true
}

func parseIndexArguments(s *Session, level int) bool {
	if !s.at(lexer.TokenLBracket) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	ok := NotApplicationArguments(s, level, parseExpression)
	for ok && s.at(lexer.TokenComma) {
		s.b.Advance()
		ok = NotApplicationArguments(s, level, parseExpression)
	}
	if !ok || !s.consume(lexer.TokenRBracket) {
		m.Drop()
		return false
	}
	m.Done(tree.KindArgumentList)
	return true
}

// parseArgumentExpression parses `name: value` while arguments are being
// parsed, and a plain expression otherwise.
func parseArgumentExpression(s *Session, level int) bool {
	if IsArguments(s, level) && (s.at(lexer.TokenIdent) || s.at(lexer.TokenStringLiteral)) && s.b.LookAhead(1) == lexer.TokenColon {
		m := s.b.Mark()
		s.b.Advance()
		s.b.Advance()
		if !parseExpression(s, level+1) {
			AddVariant(s, level, "expression")
			ReportError(s, level)
		}
		m.Done(tree.KindNamedArgument)
		return true
	}
	return parseArguments.Without(&s.flags, func() bool {
		return parseExpression(s, level+1)
	})
}

func parsePrimary(s *Session, level int) bool {
	switch kind := s.b.TokenKind(); {
	case literalTokens.Contains(kind):
		return parseLeaf(s, tree.KindLiteral)
	case kind == lexer.TokenIdent:
		return parseLeaf(s, tree.KindReferenceExpression)
	case kind == lexer.TokenThis || kind == lexer.TokenSuper:
		return parseLeaf(s, tree.KindThisExpression)
	case kind == lexer.TokenLParen:
		return parseParenthesized(s, level+1)
	case kind == lexer.TokenLBracket:
		return parseList(s, level+1)
	case kind == lexer.TokenLBrace:
		return parseClosure(s, level+1)
	case kind == lexer.TokenNew:
		return parseNew(s, level+1)
	}
	return false
}

func parseLeaf(s *Session, kind tree.Kind) bool {
	m := s.b.Mark()
	s.b.Advance()
	m.Done(kind)
	return true
}

func parseParenthesized(s *Session, level int) bool {
	m := s.b.Mark()
	s.b.Advance()
	ok := parseArguments.Without(&s.flags, func() bool {
		return NotApplicationArguments(s, level, parseCommandExpression)
	})
	if !ok {
		AddVariant(s, level, "expression")
		ReportError(s, level)
	}
	s.expect(level, lexer.TokenRParen)
	m.Done(tree.KindParenthesizedExpression)
	return true
}

// parseList parses list literals and map literals; entries of a map literal
// are named arguments.
func parseList(s *Session, level int) bool {
	m := s.b.Mark()
	s.b.Advance()
	switch {
	case s.at(lexer.TokenColon) && s.b.LookAhead(1) == lexer.TokenRBracket:
		s.b.Advance()
	case !s.at(lexer.TokenRBracket):
		NotApplicationArguments(s, level, func(s *Session, level int) bool {
			for {
				if !ParseArgument(s, level, parseArgumentExpression) {
					AddVariant(s, level, "expression")
					ReportError(s, level)
					return false
				}
				if !s.at(lexer.TokenComma) {
					return true
				}
				s.b.Advance()
			}
		})
	}
	s.expect(level, lexer.TokenRBracket)
	m.Done(tree.KindListExpression)
	return true
}

func parseClosure(s *Session, level int) bool {
	if !s.at(lexer.TokenLBrace) {
		return false
	}
	m := s.b.Mark()
	s.b.Advance()
	parseArguments.Without(&s.flags, func() bool {
		return NotApplicationArguments(s, level, func(s *Session, level int) bool {
			s.attempt(func() bool { return parseClosureParameters(s, level+1) })
			parseStatements(s, level+1, lexer.TokenRBrace)
			return true
		})
	})
	s.expect(level, lexer.TokenRBrace)
	m.Done(tree.KindClosure)
	return true
}

func parseClosureParameters(s *Session, level int) bool {
	m := s.b.Mark()
	if !s.at(lexer.TokenArrow) {
		if !parseParameter(s, level+1) {
			return false
		}
		for s.at(lexer.TokenComma) {
			s.b.Advance()
			if !parseParameter(s, level+1) {
				return false
			}
		}
	}
	if !s.consume(lexer.TokenArrow) {
		return false
	}
	m.Done(tree.KindParameterList)
	return true
}

func parseNew(s *Session, level int) bool {
	m := s.b.Mark()
	s.b.Advance()
	if !AllowDiamond(s, level, parseTypeElement) {
		AddVariant(s, level, "type")
		ReportError(s, level)
		m.Done(tree.KindNewExpression)
		return true
	}
	switch {
	case s.at(lexer.TokenLParen) || s.at(lexer.TokenLBrace):
		parseCallArguments(s, level+1)
	case s.at(lexer.TokenLBracket):
		for s.at(lexer.TokenLBracket) && parseIndexArguments(s, level+1) {
		}
	default:
		AddVariant(s, level, "arguments")
		ReportError(s, level)
	}
	m.Done(tree.KindNewExpression)
	return true
}
