package lexer

import (
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func New(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// Tokenize returns every token of input, trivia included, terminated by a
// single EOF token.
func Tokenize(input []byte, file string) []Token {
	l := New(input, file)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}
	if ch == '#' && l.peekN(1) == '!' && l.pos == 0 {
		return l.scanLineComment(startPos)
	}

	if ch == '\n' || (ch == '\r' && l.peekN(1) == '\n') {
		return l.scanNewlines(startPos)
	}
	if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' {
		return l.scanWhitespace(startPos)
	}
	if ch == '\\' && (l.peekN(1) == '\n' || (l.peekN(1) == '\r' && l.peekN(2) == '\n')) {
		// line continuation
		l.advance()
		for l.peek() == '\r' || l.peek() == '\n' {
			l.advance()
		}
		return l.token(TokenWhitespace, startPos)
	}

	if isLetter(ch) {
		return l.scanIdentOrKeyword(startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if ch == '\'' || ch == '"' {
		return l.scanString(startPos, ch)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\f' || (ch == '\r' && l.peekN(1) != '\n') {
			l.advance()
		} else {
			break
		}
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanNewlines(start Position) Token {
	for {
		ch := l.peek()
		if ch == '\n' || ch == '\r' || ch == ' ' || ch == '\t' {
			l.advance()
		} else {
			break
		}
	}
	return l.token(TokenNewline, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	for {
		if l.pos >= len(l.input) {
			break
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	return l.token(TokenComment, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for isLetterOrDigit(l.peek()) {
		l.advance()
	}
	end := l.Position()
	literal := string(l.input[start.Offset:end.Offset])
	return Token{
		Kind:    LookupKeyword(literal),
		Span:    Span{Start: start, End: end},
		Literal: literal,
	}
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.advanceN(2)
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		l.scanIntegerSuffix()
		return l.token(TokenIntLiteral, start)
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		l.advanceN(2)
		for l.peek() == '0' || l.peek() == '1' || l.peek() == '_' {
			l.advance()
		}
		l.scanIntegerSuffix()
		return l.token(TokenIntLiteral, start)
	}

	isFloat := false
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	// 1..2 is a range, not a float
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	switch l.peek() {
	case 'f', 'F', 'd', 'D':
		isFloat = true
		l.advance()
	case 'g', 'G':
		l.advance()
	default:
		if !isFloat {
			l.scanIntegerSuffix()
		}
	}

	if isFloat {
		return l.token(TokenFloatLiteral, start)
	}
	return l.token(TokenIntLiteral, start)
}

func (l *Lexer) scanIntegerSuffix() {
	switch l.peek() {
	case 'l', 'L', 'i', 'I', 'g', 'G':
		l.advance()
	}
}

func (l *Lexer) scanString(start Position, quote byte) Token {
	if l.peekN(1) == quote && l.peekN(2) == quote {
		return l.scanTripleQuoted(start, quote)
	}
	l.advance()
	interpolated := false
	for l.peek() != 0 && l.peek() != quote && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		} else if quote == '"' && l.peek() == '$' {
			interpolated = true
		}
		l.advance()
	}
	if l.peek() == quote {
		l.advance()
	}
	if interpolated {
		return l.token(TokenGString, start)
	}
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanTripleQuoted(start Position, quote byte) Token {
	l.advanceN(3)
	interpolated := false
	for l.pos < len(l.input) {
		if l.peek() == quote && l.peekN(1) == quote && l.peekN(2) == quote {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' {
			l.advance()
		} else if quote == '"' && l.peek() == '$' {
			interpolated = true
		}
		l.advance()
	}
	if interpolated {
		return l.token(TokenGString, start)
	}
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanOperator(start Position) Token {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '{':
		l.advance()
		return l.token(TokenLBrace, start)
	case '}':
		l.advance()
		return l.token(TokenRBrace, start)
	case '[':
		l.advance()
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(TokenRBracket, start)
	case ';':
		l.advance()
		return l.token(TokenSemicolon, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case '@':
		l.advance()
		return l.token(TokenAt, start)
	case '~':
		l.advance()
		return l.token(TokenBitNot, start)

	case '?':
		if l.peekN(1) == '.' {
			l.advanceN(2)
			return l.token(TokenSafeDot, start)
		}
		if l.peekN(1) == ':' {
			l.advanceN(2)
			return l.token(TokenElvis, start)
		}
		l.advance()
		return l.token(TokenQuestion, start)

	case '.':
		if l.peekN(1) == '.' {
			if l.peekN(2) == '.' {
				l.advanceN(3)
				return l.token(TokenEllipsis, start)
			}
			if l.peekN(2) == '<' {
				l.advanceN(3)
				return l.token(TokenRangeExclusive, start)
			}
			l.advanceN(2)
			return l.token(TokenRange, start)
		}
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(TokenMethodPointer, start)
		}
		l.advance()
		return l.token(TokenDot, start)

	case ':':
		if l.peekN(1) == ':' {
			l.advanceN(2)
			return l.token(TokenColonColon, start)
		}
		l.advance()
		return l.token(TokenColon, start)

	case '=':
		if l.peekN(1) == '=' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(TokenIdentical, start)
			}
			if l.peekN(2) == '~' {
				l.advanceN(3)
				return l.token(TokenRegexMatch, start)
			}
			l.advanceN(2)
			return l.token(TokenEQ, start)
		}
		if l.peekN(1) == '~' {
			l.advanceN(2)
			return l.token(TokenRegexFind, start)
		}
		l.advance()
		return l.token(TokenAssign, start)

	case '!':
		if l.peekN(1) == '=' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(TokenNotIdentical, start)
			}
			l.advanceN(2)
			return l.token(TokenNE, start)
		}
		l.advance()
		return l.token(TokenNot, start)

	case '<':
		if l.peekN(1) == '=' {
			if l.peekN(2) == '>' {
				l.advanceN(3)
				return l.token(TokenCompare, start)
			}
			l.advanceN(2)
			return l.token(TokenLE, start)
		}
		l.advance()
		return l.token(TokenLT, start)

	case '>':
		// shifts are left to the grammar so that nested type arguments
		// like List<List<String>> close one bracket at a time
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenGE, start)
		}
		l.advance()
		return l.token(TokenGT, start)

	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(TokenAnd, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenAndAssign, start)
		}
		l.advance()
		return l.token(TokenBitAnd, start)

	case '|':
		if l.peekN(1) == '|' {
			l.advanceN(2)
			return l.token(TokenOr, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenOrAssign, start)
		}
		l.advance()
		return l.token(TokenBitOr, start)

	case '^':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenXorAssign, start)
		}
		l.advance()
		return l.token(TokenBitXor, start)

	case '+':
		if l.peekN(1) == '+' {
			l.advanceN(2)
			return l.token(TokenIncrement, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenPlusAssign, start)
		}
		l.advance()
		return l.token(TokenPlus, start)

	case '-':
		if l.peekN(1) == '-' {
			l.advanceN(2)
			return l.token(TokenDecrement, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenMinusAssign, start)
		}
		if l.peekN(1) == '>' {
			l.advanceN(2)
			return l.token(TokenArrow, start)
		}
		l.advance()
		return l.token(TokenMinus, start)

	case '*':
		if l.peekN(1) == '*' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(TokenPowerAssign, start)
			}
			l.advanceN(2)
			return l.token(TokenPower, start)
		}
		if l.peekN(1) == '.' {
			l.advanceN(2)
			return l.token(TokenSpreadDot, start)
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenStarAssign, start)
		}
		l.advance()
		return l.token(TokenStar, start)

	case '/':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenSlashAssign, start)
		}
		l.advance()
		return l.token(TokenSlash, start)

	case '%':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenPercentAssign, start)
		}
		l.advance()
		return l.token(TokenPercent, start)
	}

	if ch >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(l.input[l.pos:])
		l.advanceN(size)
	} else {
		l.advance()
	}
	return l.token(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(ch byte) bool {
	if ch >= utf8.RuneSelf {
		return true
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// IsCapitalized reports whether the first rune of text is an upper-case letter.
func IsCapitalized(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
