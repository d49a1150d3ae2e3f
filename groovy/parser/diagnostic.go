package parser

import (
	"fmt"

	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

type Diagnostic struct {
	Span    lexer.Span
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Span.Start, d.Message)
}

// CollectDiagnostics lists the error nodes under root in source order. An
// empty error leaf added by Error is anchored to the node it annotates.
func CollectDiagnostics(root *tree.Node) []Diagnostic {
	var result []Diagnostic
	var visit func(n, parent *tree.Node)
	visit = func(n, parent *tree.Node) {
		if n.IsError() && n.Error != nil {
			span := n.Span
			if len(n.Children) == 0 && span.Start.Offset == span.End.Offset && parent != nil && parent.Kind != tree.KindFile {
				span = parent.Span
			}
			result = append(result, Diagnostic{Span: span, Message: n.Error.Message})
		}
		for _, child := range n.Children {
			visit(child, n)
		}
	}
	visit(root, nil)
	return result
}
