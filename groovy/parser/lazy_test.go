package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/groovy/groovy/tree"
)

const classWithMethod = "class Foo {\n  def run() { println 1 }\n}"

func firstOfKind(root *tree.Node, kind tree.Kind) *tree.Node {
	var found *tree.Node
	root.Walk(func(n *tree.Node) bool {
		if found == nil && n.Kind == kind {
			found = n
		}
		return found == nil
	})
	return found
}

func TestMethodBodyIsLazy(t *testing.T) {
	root := parseSource(t, classWithMethod)

	lazy := firstOfKind(root, tree.KindLazyBlock)
	require.NotNil(t, lazy)
	require.True(t, lazy.IsLeaf())
	require.Equal(t, "{ println 1 }", lazy.TokenLiteral())
	require.Nil(t, firstOfKind(root, tree.KindBlock))
	require.Equal(t, "{ println 1 }", lazy.Source([]byte(classWithMethod)))
}

func TestMethodBodyDeep(t *testing.T) {
	root := parseSource(t, classWithMethod, WithDeepParsing())

	require.Nil(t, firstOfKind(root, tree.KindLazyBlock))
	block := firstOfKind(root, tree.KindBlock)
	require.NotNil(t, block)
	require.Equal(t, "(Block { (ApplicationExpression (ReferenceExpression println) (ArgumentList (Literal 1))) })", block.Sexp())
}

func TestExpandLazyBlock(t *testing.T) {
	root := parseSource(t, classWithMethod)
	lazy := firstOfKind(root, tree.KindLazyBlock)
	require.NotNil(t, lazy)

	expanded, err := ExpandLazyBlock([]byte(lazy.TokenLiteral()))
	require.NoError(t, err)
	require.Equal(t, "(Block { (ApplicationExpression (ReferenceExpression println) (ArgumentList (Literal 1))) })", expanded.Sexp())
	require.Equal(t, 0, expanded.Span.Start.Offset)
}

func TestExpandLazyBlockNested(t *testing.T) {
	expanded, err := ExpandLazyBlock([]byte("{ if1 { a }\n b }"))
	require.NoError(t, err)
	require.Equal(t, tree.KindBlock, expanded.Kind)
	require.Empty(t, CollectDiagnostics(expanded))
}

func TestExpandLazyBlockUnbalanced(t *testing.T) {
	tests := []string{"{ a", "{ (a }", "a }", "{} b"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := ExpandLazyBlock([]byte(src))
			require.ErrorIs(t, err, ErrBlockNotParseable)
		})
	}
}

func TestLazyBlockNotClosed(t *testing.T) {
	src := "class Foo {\n  def run() { x"
	p := ParseFile(strings.NewReader(src))
	root, err := p.Finish()
	require.NoError(t, err)

	lazy := firstOfKind(root, tree.KindLazyBlock)
	require.NotNil(t, lazy)
	require.Equal(t, "{ x", lazy.TokenLiteral())

	diags := p.Diagnostics()
	require.NotEmpty(t, diags)
	require.Equal(t, "'}' expected", diags[0].Message)
}

func TestParseBlockLazyRequiresBrace(t *testing.T) {
	s := newTestSession("x")
	require.False(t, ParseBlockLazy(s, 0, parseBlock, tree.KindLazyBlock))
	require.Equal(t, 0, s.b.RawTokenIndex())
}
