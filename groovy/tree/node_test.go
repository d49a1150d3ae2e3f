package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildCall builds (MethodCallExpression (ReferenceExpression foo) ( (Literal 1) )).
func buildCall(t *testing.T) (*Node, []byte) {
	t.Helper()
	b := newTestBuilder("foo(1)")
	ref := b.Mark()
	b.Advance()
	ref.Done(KindReferenceExpression)
	call := ref.Precede()
	b.Advance()
	lit := b.Mark()
	b.Advance()
	lit.Done(KindLiteral)
	b.Advance()
	call.Done(KindMethodCallExpression)
	root, err := b.Tree()
	require.NoError(t, err)
	return root, b.Text()
}

func TestNodeNavigation(t *testing.T) {
	root, text := buildCall(t)

	require.Equal(t, KindMethodCallExpression, root.Kind)
	require.False(t, root.IsLeaf())
	ref := root.FirstChildOfKind(KindReferenceExpression)
	require.NotNil(t, ref)
	require.Equal(t, "foo", ref.Source(text))
	require.Len(t, root.ChildrenOfKind(KindToken), 2)
	require.Nil(t, root.FirstChildOfKind(KindClosure))
	require.Equal(t, "foo(1)", root.Source(text))

	paren := root.Children[1]
	require.True(t, paren.IsLeaf())
	require.Equal(t, "(", paren.TokenLiteral())
}

func TestNodeWalk(t *testing.T) {
	root, _ := buildCall(t)

	var kinds []string
	root.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind.String())
		return n.Kind != KindReferenceExpression
	})
	require.Equal(t, []string{"MethodCallExpression", "ReferenceExpression", "Token", "Literal", "Token", "Token"}, kinds)
}

func TestNodeString(t *testing.T) {
	root, _ := buildCall(t)

	want := strings.Join([]string{
		"MethodCallExpression",
		"  ReferenceExpression",
		"    Identifier foo",
		"  ( (",
		"  Literal",
		"    IntLiteral 1",
		"  ) )",
		"",
	}, "\n")
	require.Equal(t, want, root.String())
	require.Contains(t, root.StringWithPositions(), "MethodCallExpression [1:1-1:7]")
}

func TestNodeSourceOutOfRange(t *testing.T) {
	n := &Node{}
	n.Span.End.Offset = 10
	require.Equal(t, "", n.Source([]byte("short")))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "ApplicationIndex", KindApplicationIndex.String())
	require.Equal(t, "Unknown", Kind(-1).String())
}
