package lexer

// TokenSet is an immutable set of token kinds.
type TokenSet map[TokenKind]struct{}

func NewTokenSet(kinds ...TokenKind) TokenSet {
	s := make(TokenSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s TokenSet) Contains(kind TokenKind) bool {
	_, ok := s[kind]
	return ok
}

var Keywords = func() TokenSet {
	s := make(TokenSet, len(keywords))
	for _, kind := range keywords {
		s[kind] = struct{}{}
	}
	return s
}()

var PrimitiveTypes = NewTokenSet(
	TokenBoolean, TokenByte, TokenChar, TokenShort,
	TokenInt, TokenLong, TokenFloat, TokenDouble, TokenVoid,
)

var AssignmentOperators = NewTokenSet(
	TokenAssign,
	TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenPowerAssign,
	TokenSlashAssign, TokenPercentAssign,
	TokenAndAssign, TokenOrAssign, TokenXorAssign,
)

var EqualityOperators = NewTokenSet(
	TokenEQ, TokenNE, TokenIdentical, TokenNotIdentical,
	TokenCompare, TokenRegexFind, TokenRegexMatch,
)

// Trivia are skipped by the tree builder. Newlines are trivia too: the
// grammar detects line breaks from raw source offsets instead.
var Trivia = NewTokenSet(TokenWhitespace, TokenNewline, TokenComment, TokenLineComment)
