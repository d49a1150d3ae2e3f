package lexer

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenNewline
	TokenComment
	TokenLineComment

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral
	TokenGString
	TokenTrue
	TokenFalse
	TokenNull

	// Keywords
	TokenAbstract
	TokenAs
	TokenAssert
	TokenBoolean
	TokenBreak
	TokenByte
	TokenCase
	TokenCatch
	TokenChar
	TokenClass
	TokenContinue
	TokenDef
	TokenDefault
	TokenDo
	TokenDouble
	TokenElse
	TokenEnum
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFloat
	TokenFor
	TokenIf
	TokenImplements
	TokenImport
	TokenIn
	TokenInstanceof
	TokenInt
	TokenInterface
	TokenLong
	TokenNative
	TokenNew
	TokenPackage
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReturn
	TokenShort
	TokenStatic
	TokenSuper
	TokenSwitch
	TokenSynchronized
	TokenThis
	TokenThrow
	TokenThrows
	TokenTrait
	TokenTransient
	TokenTry
	TokenVoid
	TokenVolatile
	TokenWhile

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenSafeDot
	TokenSpreadDot
	TokenMethodPointer
	TokenRange
	TokenRangeExclusive
	TokenEllipsis
	TokenAt
	TokenColonColon

	TokenAssign
	TokenEQ
	TokenNE
	TokenIdentical
	TokenNotIdentical
	TokenCompare
	TokenRegexFind
	TokenRegexMatch
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenPlus
	TokenMinus
	TokenStar
	TokenPower
	TokenSlash
	TokenPercent
	TokenIncrement
	TokenDecrement
	TokenQuestion
	TokenElvis
	TokenColon
	TokenArrow
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenPowerAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:            "EOF",
	TokenError:          "Error",
	TokenWhitespace:     "Whitespace",
	TokenNewline:        "Newline",
	TokenComment:        "Comment",
	TokenLineComment:    "LineComment",
	TokenIdent:          "Identifier",
	TokenIntLiteral:     "IntLiteral",
	TokenFloatLiteral:   "FloatLiteral",
	TokenStringLiteral:  "StringLiteral",
	TokenGString:        "GString",
	TokenTrue:           "true",
	TokenFalse:          "false",
	TokenNull:           "null",
	TokenAbstract:       "abstract",
	TokenAs:             "as",
	TokenAssert:         "assert",
	TokenBoolean:        "boolean",
	TokenBreak:          "break",
	TokenByte:           "byte",
	TokenCase:           "case",
	TokenCatch:          "catch",
	TokenChar:           "char",
	TokenClass:          "class",
	TokenContinue:       "continue",
	TokenDef:            "def",
	TokenDefault:        "default",
	TokenDo:             "do",
	TokenDouble:         "double",
	TokenElse:           "else",
	TokenEnum:           "enum",
	TokenExtends:        "extends",
	TokenFinal:          "final",
	TokenFinally:        "finally",
	TokenFloat:          "float",
	TokenFor:            "for",
	TokenIf:             "if",
	TokenImplements:     "implements",
	TokenImport:         "import",
	TokenIn:             "in",
	TokenInstanceof:     "instanceof",
	TokenInt:            "int",
	TokenInterface:      "interface",
	TokenLong:           "long",
	TokenNative:         "native",
	TokenNew:            "new",
	TokenPackage:        "package",
	TokenPrivate:        "private",
	TokenProtected:      "protected",
	TokenPublic:         "public",
	TokenReturn:         "return",
	TokenShort:          "short",
	TokenStatic:         "static",
	TokenSuper:          "super",
	TokenSwitch:         "switch",
	TokenSynchronized:   "synchronized",
	TokenThis:           "this",
	TokenThrow:          "throw",
	TokenThrows:         "throws",
	TokenTrait:          "trait",
	TokenTransient:      "transient",
	TokenTry:            "try",
	TokenVoid:           "void",
	TokenVolatile:       "volatile",
	TokenWhile:          "while",
	TokenLParen:         "(",
	TokenRParen:         ")",
	TokenLBrace:         "{",
	TokenRBrace:         "}",
	TokenLBracket:       "[",
	TokenRBracket:       "]",
	TokenSemicolon:      ";",
	TokenComma:          ",",
	TokenDot:            ".",
	TokenSafeDot:        "?.",
	TokenSpreadDot:      "*.",
	TokenMethodPointer:  ".&",
	TokenRange:          "..",
	TokenRangeExclusive: "..<",
	TokenEllipsis:       "...",
	TokenAt:             "@",
	TokenColonColon:     "::",
	TokenAssign:         "=",
	TokenEQ:             "==",
	TokenNE:             "!=",
	TokenIdentical:      "===",
	TokenNotIdentical:   "!==",
	TokenCompare:        "<=>",
	TokenRegexFind:      "=~",
	TokenRegexMatch:     "==~",
	TokenLT:             "<",
	TokenLE:             "<=",
	TokenGT:             ">",
	TokenGE:             ">=",
	TokenAnd:            "&&",
	TokenOr:             "||",
	TokenNot:            "!",
	TokenBitAnd:         "&",
	TokenBitOr:          "|",
	TokenBitXor:         "^",
	TokenBitNot:         "~",
	TokenPlus:           "+",
	TokenMinus:          "-",
	TokenStar:           "*",
	TokenPower:          "**",
	TokenSlash:          "/",
	TokenPercent:        "%",
	TokenIncrement:      "++",
	TokenDecrement:      "--",
	TokenQuestion:       "?",
	TokenElvis:          "?:",
	TokenColon:          ":",
	TokenArrow:          "->",
	TokenPlusAssign:     "+=",
	TokenMinusAssign:    "-=",
	TokenStarAssign:     "*=",
	TokenPowerAssign:    "**=",
	TokenSlashAssign:    "/=",
	TokenPercentAssign:  "%=",
	TokenAndAssign:      "&=",
	TokenOrAssign:       "|=",
	TokenXorAssign:      "^=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"abstract":     TokenAbstract,
	"as":           TokenAs,
	"assert":       TokenAssert,
	"boolean":      TokenBoolean,
	"break":        TokenBreak,
	"byte":         TokenByte,
	"case":         TokenCase,
	"catch":        TokenCatch,
	"char":         TokenChar,
	"class":        TokenClass,
	"continue":     TokenContinue,
	"def":          TokenDef,
	"default":      TokenDefault,
	"do":           TokenDo,
	"double":       TokenDouble,
	"else":         TokenElse,
	"enum":         TokenEnum,
	"extends":      TokenExtends,
	"final":        TokenFinal,
	"finally":      TokenFinally,
	"float":        TokenFloat,
	"for":          TokenFor,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"import":       TokenImport,
	"in":           TokenIn,
	"instanceof":   TokenInstanceof,
	"int":          TokenInt,
	"interface":    TokenInterface,
	"long":         TokenLong,
	"native":       TokenNative,
	"new":          TokenNew,
	"package":      TokenPackage,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"return":       TokenReturn,
	"short":        TokenShort,
	"static":       TokenStatic,
	"super":        TokenSuper,
	"switch":       TokenSwitch,
	"synchronized": TokenSynchronized,
	"this":         TokenThis,
	"throw":        TokenThrow,
	"throws":       TokenThrows,
	"trait":        TokenTrait,
	"transient":    TokenTransient,
	"try":          TokenTry,
	"void":         TokenVoid,
	"volatile":     TokenVolatile,
	"while":        TokenWhile,
	"true":         TokenTrue,
	"false":        TokenFalse,
	"null":         TokenNull,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
