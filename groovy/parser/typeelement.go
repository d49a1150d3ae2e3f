package parser

import "github.com/dhamidi/groovy/groovy/lexer"

// CompletionPlaceholder is the identifier editors insert at the caret when
// requesting completion. It is never treated as capitalized.
const CompletionPlaceholder = "IntellijIdeaRulezzz"

func AllowDiamond(s *Session, level int, rule Rule) bool {
	return parseDiamonds.With(&s.flags, true, func() bool {
		return rule(s, level)
	})
}

func IsDiamondAllowed(s *Session, level int) bool {
	return parseDiamonds.Get(&s.flags)
}

// AnyTypeElement parses rule with the capitalized and definitely-type
// heuristics switched off, as inside type arguments.
func AnyTypeElement(s *Session, level int, rule Rule) bool {
	return parseAnyTypeElement.With(&s.flags, true, func() bool {
		return rule(s, level+1)
	})
}

func (s *Session) anyTypeElementParsing() bool {
	return parseAnyTypeElement.Get(&s.flags)
}

func QualifiedName(s *Session, level int, rule Rule) bool {
	return parseQualifiedName.With(&s.flags, true, func() bool {
		return rule(s, level)
	})
}

func IsQualifiedName(s *Session, level int) bool {
	return parseQualifiedName.Get(&s.flags)
}

// CapitalizedTypeElement parses typeElement while recording whether its
// reference was capitalized, then runs check. The recorded result does not
// outlive the call.
func CapitalizedTypeElement(s *Session, level int, typeElement, check Rule) bool {
	defer referenceWasCapitalized.Clear(&s.flags)
	return parseCapitalizedCodeReference.With(&s.flags, true, func() bool {
		return typeElement(s, level) && check(s, level)
	})
}

func (s *Session) capitalizedReferenceParsing() bool {
	return parseCapitalizedCodeReference.Get(&s.flags) && !s.anyTypeElementParsing()
}

func RefWasCapitalized(s *Session, level int) bool {
	return referenceWasCapitalized.Get(&s.flags)
}

// CodeReferenceIdentifier parses identifier, recording whether it was
// capitalized when a capitalized type element is being parsed.
func CodeReferenceIdentifier(s *Session, level int, identifier Rule) bool {
	if !s.capitalizedReferenceParsing() {
		return identifier(s, level)
	}
	capitalized := isCapitalized(s.b.TokenText())
	if identifier(s, level) {
		referenceWasCapitalized.Set(&s.flags, capitalized)
		return true
	}
	referenceWasCapitalized.Clear(&s.flags)
	return false
}

func isCapitalized(text string) bool {
	return text != CompletionPlaceholder && lexer.IsCapitalized(text)
}

// DefinitelyTypeElement parses typeElement and accepts it outright when it
// was a primitive, had type arguments or was qualified. Otherwise check
// decides. The three signals are cleared after every attempt.
func DefinitelyTypeElement(s *Session, level int, typeElement, check Rule) bool {
	defer s.clearTypeInfo()
	ok := parseDefinitelyTypeElement.With(&s.flags, true, func() bool {
		return typeElement(s, level)
	})
	return ok && (s.wasDefinitelyTypeElement() || check(s, level))
}

func (s *Session) definitelyTypeElementParsing() bool {
	return parseDefinitelyTypeElement.Get(&s.flags) && !s.anyTypeElementParsing()
}

func (s *Session) wasDefinitelyTypeElement() bool {
	return typeWasPrimitive.Get(&s.flags) ||
		referenceHadTypeArguments.Get(&s.flags) ||
		referenceWasQualified.Get(&s.flags)
}

func (s *Session) clearTypeInfo() {
	typeWasPrimitive.Clear(&s.flags)
	referenceHadTypeArguments.Clear(&s.flags)
	referenceWasQualified.Clear(&s.flags)
}

func SetTypeWasPrimitive(s *Session, level int) bool {
	if s.definitelyTypeElementParsing() {
		typeWasPrimitive.Set(&s.flags, true)
	}
	return true
}

func SetRefWasQualified(s *Session, level int) bool {
	if s.definitelyTypeElementParsing() {
		referenceWasQualified.Set(&s.flags, true)
	}
	return true
}

func SetRefHadTypeArguments(s *Session, level int) bool {
	if s.definitelyTypeElementParsing() {
		referenceHadTypeArguments.Set(&s.flags, true)
	}
	return true
}
