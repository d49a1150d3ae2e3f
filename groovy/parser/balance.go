package parser

import "github.com/dhamidi/groovy/groovy/lexer"

// IsBlockParseable reports whether text is a single block whose braces and
// parentheses balance. text must start with '{' and end where that block
// closes.
func IsBlockParseable(text []byte) bool {
	l := lexer.New(text, "")
	tok := l.NextToken()
	if tok.Kind != lexer.TokenLBrace {
		return false
	}
	stack := []lexer.TokenKind{lexer.TokenLBrace}
	for {
		tok = l.NextToken()
		if tok.Kind == lexer.TokenEOF {
			return len(stack) == 0
		}
		if len(stack) == 0 {
			return false
		}
		switch tok.Kind {
		case lexer.TokenLBrace, lexer.TokenLParen:
			stack = append(stack, tok.Kind)
		case lexer.TokenRBrace, lexer.TokenRParen:
			opener := lexer.TokenLBrace
			if tok.Kind == lexer.TokenRParen {
				opener = lexer.TokenLParen
			}
			if stack[len(stack)-1] != opener {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
}
