package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/groovy/groovy/tree"
)

func newTestSession(src string, opts ...Option) *Session {
	return NewSession([]byte(src), opts...)
}

// leaf completes the current token as a node of kind.
func leaf(s *Session, kind tree.Kind) tree.Marker {
	m := s.b.Mark()
	s.b.Advance()
	m.Done(kind)
	return m
}

func finish(t *testing.T, s *Session) *tree.Node {
	t.Helper()
	for !s.b.EOF() {
		s.b.Advance()
	}
	root, err := s.b.Tree()
	require.NoError(t, err)
	return root
}

func TestCollapseToToken(t *testing.T) {
	s := newTestSession("{ a }")
	m := s.b.Mark()
	for !s.b.EOF() {
		s.b.Advance()
	}
	m.Done(tree.KindBlock)
	collapsed := CollapseToToken(s, m, tree.KindLazyBlock)

	require.Equal(t, tree.KindLazyBlock, collapsed.Kind())
	require.Equal(t, "(LazyBlock { a })", finish(t, s).Sexp())
}

func TestErrorWrapsLatestNode(t *testing.T) {
	s := newTestSession("foo")
	leaf(s, tree.KindReferenceExpression)

	require.True(t, Error(s, 0, "method.return.type.expected"))
	latest, ok := s.b.LatestDone()
	require.True(t, ok)
	require.Equal(t, tree.KindReferenceExpression, latest.Kind())
	require.Equal(t, "(ReferenceExpression foo (Error !method return type expected))", finish(t, s).Sexp())
}

func TestErrorWithoutCompletedNode(t *testing.T) {
	s := newTestSession("foo")
	require.False(t, Error(s, 0, "method.return.type.expected"))
	require.Equal(t, "foo", s.b.TokenText())
}

func TestUnexpected(t *testing.T) {
	s := newTestSession("x y")
	require.True(t, UnexpectedAny(s, 0, "unexpected.token"))
	require.Equal(t, "y", s.b.TokenText())
	require.Equal(t, "(File (Error !unexpected token x) y)", finish(t, s).Sexp())
}

func TestUnexpectedWithFailingRule(t *testing.T) {
	s := newTestSession("x")
	require.True(t, Unexpected(s, 0, NoMatch, "unexpected.token"))
	require.Equal(t, 0, s.b.RawTokenIndex())
	_, ok := s.b.LatestDone()
	require.False(t, ok)
}

func TestParseTailLeftFlat(t *testing.T) {
	s := newTestSession("x in xs")
	require.True(t, ParseTailLeftFlat(s, 0, parseForInHead, parseForInTail))
	require.True(t, s.b.EOF())
	require.Equal(t, "(ForInClause (Parameter x) in (ReferenceExpression xs))", finish(t, s).Sexp())
}

func TestParseTailLeftFlatHeadFails(t *testing.T) {
	s := newTestSession("1 in xs")
	require.False(t, ParseTailLeftFlat(s, 0, parseForInHead, parseForInTail))
	require.Equal(t, 0, s.b.RawTokenIndex())
	_, ok := s.b.LatestDone()
	require.False(t, ok)
}

func TestParseTailLeftFlatTailFails(t *testing.T) {
	s := newTestSession("x")
	require.True(t, ParseTailLeftFlat(s, 0, parseForInHead, parseForInTail))
	require.True(t, s.b.EOF())
	latest, ok := s.b.LatestDone()
	require.True(t, ok)
	require.Equal(t, tree.KindParameter, latest.Kind())
	require.Equal(t, "(File (Parameter x) (Error !'in' or ':' expected, got end of file))", finish(t, s).Sexp())
}

func TestWrapLeft(t *testing.T) {
	s := newTestSession("1 2 3 4")
	leaf(s, tree.KindLiteral)
	leaf(s, tree.KindLiteral)
	require.True(t, MarkLeft(s, 0))
	leaf(s, tree.KindLiteral)
	leaf(s, tree.KindEqualityExpression)

	require.True(t, WrapLeft(s, 0))
	latest, _ := s.b.LatestDone()
	require.Equal(t, tree.KindEqualityExpression, latest.Kind())
	require.Equal(t, "(File (Literal 1) (EqualityExpression (Literal 2) (Literal 3) 4))", finish(t, s).Sexp())
}

func TestWrapLeftWithNothingInBetween(t *testing.T) {
	s := newTestSession("1")
	leaf(s, tree.KindLiteral)
	require.True(t, MarkLeft(s, 0))
	require.True(t, WrapLeft(s, 0))

	root := finish(t, s)
	require.Equal(t, "(Literal 1)", root.Sexp())
	require.Equal(t, 0, root.Span.Start.Offset)
	require.Equal(t, 1, root.Span.End.Offset)
}

func TestWrapLeftWithoutMark(t *testing.T) {
	s := newTestSession("1")
	leaf(s, tree.KindLiteral)
	require.False(t, WrapLeft(s, 0))

	s = newTestSession("1")
	require.True(t, MarkLeft(s, 0))
	leaf(s, tree.KindLiteral)
	require.False(t, WrapLeft(s, 0))
}
