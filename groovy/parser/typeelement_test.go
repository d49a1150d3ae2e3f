package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/groovy/groovy/lexer"
)

func TestDefinitelyTypeElement(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		check       bool
		want        bool
		wantChecked bool
	}{
		{"primitive", "int", false, true, false},
		{"qualified", "a.b", false, true, false},
		{"type arguments", "List<String>", false, true, false},
		{"array of primitive", "int[]", false, true, false},
		{"plain reference rejected", "foo", false, false, true},
		{"plain reference accepted", "foo", true, true, true},
		{"not a type", "1", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(tt.src)
			checked := false
			check := func(s *Session, level int) bool {
				checked = true
				return tt.check
			}

			require.Equal(t, tt.want, DefinitelyTypeElement(s, 0, parseTypeElement, check))
			require.Equal(t, tt.wantChecked, checked)
			require.False(t, s.wasDefinitelyTypeElement())
			require.False(t, s.definitelyTypeElementParsing())
		})
	}
}

func TestDefinitelyTypeElementInsideTypeArguments(t *testing.T) {
	s := newTestSession("int")
	AnyTypeElement(s, 0, func(s *Session, level int) bool {
		return parseDefinitelyTypeElement.With(&s.flags, true, func() bool {
			require.True(t, parseTypeElement(s, level))
			require.False(t, typeWasPrimitive.Get(&s.flags))
			return true
		})
	})
}

func TestCapitalizedTypeElement(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"Foo x", true},
		{"foo x", false},
		{"foo.bar x", true},
		{"int x", true},
		{"Foo", false},
		{"Foo<T> x", true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := newTestSession(tt.src)
			require.Equal(t, tt.want, CapitalizedTypeElement(s, 0, parseDefinitelyType, identifierFollows))
			_, set := referenceWasCapitalized.Lookup(&s.flags)
			require.False(t, set)
			require.False(t, s.capitalizedReferenceParsing())
		})
	}
}

func TestCodeReferenceIdentifier(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"Foo", true},
		{"foo", false},
		{CompletionPlaceholder, false},
		{"Ärger", true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := newTestSession(tt.src)
			parseCapitalizedCodeReference.With(&s.flags, true, func() bool {
				return CodeReferenceIdentifier(s, 0, parseIdentifier)
			})
			capitalized, set := referenceWasCapitalized.Lookup(&s.flags)
			require.True(t, set)
			require.Equal(t, tt.want, capitalized)
			require.True(t, s.b.EOF())
		})
	}
}

func TestCodeReferenceIdentifierOutsideCapitalizedParsing(t *testing.T) {
	s := newTestSession("Foo")
	require.True(t, CodeReferenceIdentifier(s, 0, parseIdentifier))
	_, set := referenceWasCapitalized.Lookup(&s.flags)
	require.False(t, set)

	s = newTestSession("Foo")
	parseCapitalizedCodeReference.With(&s.flags, true, func() bool {
		return AnyTypeElement(s, 0, func(s *Session, level int) bool {
			return CodeReferenceIdentifier(s, level, parseIdentifier)
		})
	})
	_, set = referenceWasCapitalized.Lookup(&s.flags)
	require.False(t, set)
}

func TestCodeReferenceIdentifierFailureClears(t *testing.T) {
	s := newTestSession("1")
	referenceWasCapitalized.Set(&s.flags, true)
	ok := parseCapitalizedCodeReference.With(&s.flags, true, func() bool {
		return CodeReferenceIdentifier(s, 0, parseIdentifier)
	})
	require.False(t, ok)
	_, set := referenceWasCapitalized.Lookup(&s.flags)
	require.False(t, set)
}

func TestDiamond(t *testing.T) {
	s := newTestSession("List<>")
	require.True(t, parseTypeElement(s, 0))
	require.Equal(t, lexer.TokenLT, s.b.TokenKind())

	s = newTestSession("List<>")
	require.False(t, IsDiamondAllowed(s, 0))
	require.True(t, AllowDiamond(s, 0, parseTypeElement))
	require.True(t, s.b.EOF())
	require.False(t, IsDiamondAllowed(s, 0))
}

func TestQualifiedName(t *testing.T) {
	s := newTestSession("a.b<c>")
	require.True(t, QualifiedName(s, 0, func(s *Session, level int) bool {
		require.True(t, IsQualifiedName(s, level))
		return parseCodeReference(s, level)
	}))
	require.Equal(t, lexer.TokenLT, s.b.TokenKind())
	require.False(t, IsQualifiedName(s, 0))

	s = newTestSession("a.b<c>")
	require.True(t, parseCodeReference(s, 0))
	require.True(t, s.b.EOF())
}

func TestTypeSignalsOutsideDefinitelyParsing(t *testing.T) {
	s := newTestSession("x")
	require.True(t, SetTypeWasPrimitive(s, 0))
	require.True(t, SetRefWasQualified(s, 0))
	require.True(t, SetRefHadTypeArguments(s, 0))
	require.False(t, s.wasDefinitelyTypeElement())
}
