package lexer

import (
	"testing"
)

func significantKinds(input string) []TokenKind {
	var got []TokenKind
	for _, tok := range Tokenize([]byte(input), "test.groovy") {
		if !Trivia.Contains(tok.Kind) {
			got = append(got, tok.Kind)
		}
	}
	return got
}

func TestLexerNew(t *testing.T) {
	l := New([]byte("class Foo {}"), "Test.groovy")
	pos := l.Position()

	if pos.File != "Test.groovy" {
		t.Errorf("File = %q, want %q", pos.File, "Test.groovy")
	}
	if pos.Line != 1 || pos.Column != 1 || pos.Offset != 0 {
		t.Errorf("Position = %+v, want line 1 column 1 offset 0", pos)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"class", TokenClass},
		{"def", TokenDef},
		{"as", TokenAs},
		{"in", TokenIn},
		{"trait", TokenTrait},
		{"int", TokenInt},
		{"void", TokenVoid},
		{"new", TokenNew},
		{"true", TokenTrue},
		{"null", TokenNull},
		{"Foo", TokenIdent},
		{"$name", TokenIdent},
		{"_x1", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New([]byte(tt.input), "test.groovy").NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"def x = 1", []TokenKind{TokenDef, TokenIdent, TokenAssign, TokenIntLiteral, TokenEOF}},
		{"3.14", []TokenKind{TokenFloatLiteral, TokenEOF}},
		{"1..2", []TokenKind{TokenIntLiteral, TokenRange, TokenIntLiteral, TokenEOF}},
		{"1..<2", []TokenKind{TokenIntLiteral, TokenRangeExclusive, TokenIntLiteral, TokenEOF}},
		{"0xFFL 10G 1e3 2f", []TokenKind{TokenIntLiteral, TokenIntLiteral, TokenFloatLiteral, TokenFloatLiteral, TokenEOF}},
		{`'single'`, []TokenKind{TokenStringLiteral, TokenEOF}},
		{`"plain"`, []TokenKind{TokenStringLiteral, TokenEOF}},
		{`"hello $name"`, []TokenKind{TokenGString, TokenEOF}},
		{`'not $interpolated'`, []TokenKind{TokenStringLiteral, TokenEOF}},
		{`"""multi
line"""`, []TokenKind{TokenStringLiteral, TokenEOF}},
		{"// comment\nfoo", []TokenKind{TokenIdent, TokenEOF}},
		{"/* block */ foo", []TokenKind{TokenIdent, TokenEOF}},
		{"#!/usr/bin/env groovy\nfoo", []TokenKind{TokenIdent, TokenEOF}},
		{"a?.b*.c.&d", []TokenKind{TokenIdent, TokenSafeDot, TokenIdent, TokenSpreadDot, TokenIdent, TokenMethodPointer, TokenIdent, TokenEOF}},
		{"== != === !== <=> =~ ==~", []TokenKind{TokenEQ, TokenNE, TokenIdentical, TokenNotIdentical, TokenCompare, TokenRegexFind, TokenRegexMatch, TokenEOF}},
		{"** **= ?: ->", []TokenKind{TokenPower, TokenPowerAssign, TokenElvis, TokenArrow, TokenEOF}},
		{"+= -= *= /= %= &= |= ^=", []TokenKind{TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign, TokenPercentAssign, TokenAndAssign, TokenOrAssign, TokenXorAssign, TokenEOF}},
		{"List<List<String>>", []TokenKind{TokenIdent, TokenLT, TokenIdent, TokenLT, TokenIdent, TokenGT, TokenGT, TokenEOF}},
		{"a >= b", []TokenKind{TokenIdent, TokenGE, TokenIdent, TokenEOF}},
		{"foo \\\n bar", []TokenKind{TokenIdent, TokenIdent, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := significantKinds(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerNewlines(t *testing.T) {
	tokens := Tokenize([]byte("a\n\n  b"), "")
	want := []TokenKind{TokenIdent, TokenNewline, TokenIdent, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Kind != want[i] {
			t.Errorf("token %d = %v, want %v", i, tok.Kind, want[i])
		}
	}
	if tokens[1].Literal != "\n\n  " {
		t.Errorf("newline literal = %q, want %q", tokens[1].Literal, "\n\n  ")
	}
	b := tokens[2]
	if b.Span.Start.Line != 3 || b.Span.Start.Column != 3 || b.Span.Start.Offset != 5 {
		t.Errorf("b starts at %+v, want line 3 column 3 offset 5", b.Span.Start)
	}
}

func TestLexerTokenizeCoversInput(t *testing.T) {
	input := "class Foo { def bar() { println 'hi' } } // end"
	var rebuilt []byte
	for _, tok := range Tokenize([]byte(input), "") {
		rebuilt = append(rebuilt, tok.Literal...)
	}
	if string(rebuilt) != input {
		t.Errorf("concatenated literals = %q, want %q", rebuilt, input)
	}
}

func TestLexerUnknownCharacter(t *testing.T) {
	tok := New([]byte("#"), "").NextToken()
	if tok.Kind != TokenError {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenError)
	}
	if tok.Literal != "#" {
		t.Errorf("Literal = %q, want %q", tok.Literal, "#")
	}
}

func TestIsCapitalized(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Foo", true},
		{"foo", false},
		{"Élan", true},
		{"_Foo", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := IsCapitalized(tt.text); got != tt.want {
				t.Errorf("IsCapitalized(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
