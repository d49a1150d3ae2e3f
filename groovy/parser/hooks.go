package parser

import "github.com/dhamidi/groovy/groovy/lexer"

// ClassIdentifier consumes the name of a class being declared and pushes it
// on the class name stack. Every successful call must be paired with
// PopClassIdentifier.
func ClassIdentifier(s *Session, level int) bool {
	if !s.at(lexer.TokenIdent) {
		return false
	}
	s.classNames = append(s.classNames, s.b.TokenText())
	s.b.Advance()
	return true
}

func PopClassIdentifier(s *Session, level int) bool {
	if len(s.classNames) > 0 {
		s.classNames = s.classNames[:len(s.classNames)-1]
	}
	return true
}

// ConstructorIdentifier consumes an identifier equal to the name of the
// innermost class being declared.
func ConstructorIdentifier(s *Session, level int) bool {
	name, ok := s.CurrentClassName()
	if !ok || !s.at(lexer.TokenIdent) || s.b.TokenText() != name {
		return false
	}
	s.b.Advance()
	return true
}

func ExtendedStatement(s *Session, level int) bool {
	return s.dialect.ParseExtendedStatement(s, level)
}

// ExtendedSeparator consumes the current token when the dialect treats it as
// a statement separator.
func ExtendedSeparator(s *Session, level int) bool {
	if s.b.EOF() || !s.dialect.IsExtendedSeparator(s, level) {
		return false
	}
	s.b.Advance()
	return true
}

func ParseArgument(s *Session, level int, argument Rule) bool {
	return parseArguments.With(&s.flags, true, func() bool {
		return argument(s, level)
	})
}

func IsArguments(s *Session, level int) bool {
	return parseArguments.Get(&s.flags)
}

// ApplicationArguments parses rule as the arguments of a command expression.
func ApplicationArguments(s *Session, level int, rule Rule) bool {
	return parseApplicationArguments.With(&s.flags, true, func() bool {
		return rule(s, level)
	})
}

// NotApplicationArguments parses rule with the application argument mode
// explicitly cleared, as inside parentheses.
func NotApplicationArguments(s *Session, level int, rule Rule) bool {
	return parseApplicationArguments.Without(&s.flags, func() bool {
		return rule(s, level)
	})
}

func IsApplicationArguments(s *Session, level int) bool {
	return parseApplicationArguments.Get(&s.flags)
}

// ClosureArgumentSeparator parses closure arguments. A closure on the next
// line is not attached while application arguments are being parsed.
func ClosureArgumentSeparator(s *Session, level int, closureArguments Rule) bool {
	if NewLine(s, level) && IsApplicationArguments(s, level) {
		return false
	}
	return closureArguments(s, level)
}

func ParseKeyword(s *Session, level int) bool {
	return s.advanceIf(lexer.Keywords)
}

func ParsePrimitiveType(s *Session, level int) bool {
	return s.advanceIf(lexer.PrimitiveTypes)
}

func AssignmentOperator(s *Session, level int) bool {
	return s.advanceIf(lexer.AssignmentOperators)
}

func EqualityOperator(s *Session, level int) bool {
	return s.advanceIf(lexer.EqualityOperators)
}

func NoMatch(s *Session, level int) bool {
	return false
}

// Choice tries rules in order and stops at the first that succeeds.
func Choice(s *Session, level int, rules ...Rule) bool {
	if len(rules) < 2 {
		panic("parser: choice needs at least two alternatives")
	}
	for _, rule := range rules {
		if rule(s, level) {
			return true
		}
	}
	return false
}

func (s *Session) advanceIf(set lexer.TokenSet) bool {
	if !s.atAny(set) {
		return false
	}
	s.b.Advance()
	return true
}
