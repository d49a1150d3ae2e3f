package tree

import (
	"strings"

	"github.com/dhamidi/groovy/groovy/lexer"
)

type Error struct {
	Message string
}

// Node is a materialized parse tree node. Leaves carry a Token; a node
// collapsed by the builder is a leaf whose Kind is not KindToken.
type Node struct {
	Kind     Kind
	Span     lexer.Span
	Children []*Node
	Token    *lexer.Token
	Error    *Error
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsError() bool {
	return n.Kind == KindError
}

func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Walk calls fn for n and its descendants in pre-order. Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// Source returns the slice of text covered by the node.
func (n *Node) Source(text []byte) string {
	if n.Span.End.Offset > len(text) || n.Span.Start.Offset > n.Span.End.Offset {
		return ""
	}
	return string(text[n.Span.Start.Offset:n.Span.End.Offset])
}

func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0, false)
	return sb.String()
}

func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.write(&sb, 0, true)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	if n.Kind == KindToken && n.Token != nil {
		sb.WriteString(n.Token.Kind.String())
	} else {
		sb.WriteString(n.Kind.String())
	}
	if showPositions {
		sb.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Token != nil && n.Token.Literal != "" {
		sb.WriteString(" " + n.Token.Literal)
	}
	if n.Error != nil {
		sb.WriteString(" ERROR: " + n.Error.Message)
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.write(sb, indent+1, showPositions)
	}
}

// Sexp renders the node compactly, e.g. (AdditiveExpression (Literal 1) + (Literal 2)).
// Plain token leaves are rendered as their literal.
func (n *Node) Sexp() string {
	var sb strings.Builder
	n.sexp(&sb)
	return sb.String()
}

func (n *Node) sexp(sb *strings.Builder) {
	if n.Kind == KindToken && n.Token != nil {
		sb.WriteString(n.Token.Literal)
		return
	}
	sb.WriteString("(")
	sb.WriteString(n.Kind.String())
	if n.Error != nil {
		sb.WriteString(" !" + n.Error.Message)
	}
	if n.Token != nil {
		sb.WriteString(" " + n.Token.Literal)
	}
	for _, child := range n.Children {
		sb.WriteString(" ")
		child.sexp(sb)
	}
	sb.WriteString(")")
}
