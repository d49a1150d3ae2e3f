package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/groovy/groovy/parser"
	"github.com/dhamidi/groovy/groovy/tree"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(root *tree.Node, diags []parser.Diagnostic) error {
	text, err := e.MarshalText(root, diags)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(root *tree.Node, diags []parser.Diagnostic) ([]byte, error) {
	doc := astJSONDocument{Tree: nodeToJSON(root)}
	for _, d := range diags {
		doc.Diagnostics = append(doc.Diagnostics, astJSONDiagnostic{
			Span:    spanToJSON(d.Span.Start.Line, d.Span.Start.Column, d.Span.End.Line, d.Span.End.Column),
			Message: d.Message,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

type astJSONDocument struct {
	Tree        *astJSONNode        `json:"tree"`
	Diagnostics []astJSONDiagnostic `json:"diagnostics,omitempty"`
}

type astJSONNode struct {
	Kind      string         `json:"kind"`
	Span      *astJSONSpan   `json:"span,omitempty"`
	TokenKind string         `json:"tokenKind,omitempty"`
	Token     string         `json:"token,omitempty"`
	Error     string         `json:"error,omitempty"`
	Children  []*astJSONNode `json:"children,omitempty"`
}

type astJSONDiagnostic struct {
	Span    *astJSONSpan `json:"span,omitempty"`
	Message string       `json:"message"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func spanToJSON(startLine, startCol, endLine, endCol int) *astJSONSpan {
	if startLine == 0 && endLine == 0 {
		return nil
	}
	return &astJSONSpan{
		Start: astJSONPosition{Line: startLine, Column: startCol},
		End:   astJSONPosition{Line: endLine, Column: endCol},
	}
}

func nodeToJSON(n *tree.Node) *astJSONNode {
	if n == nil {
		return nil
	}
	jn := &astJSONNode{
		Kind: n.Kind.String(),
		Span: spanToJSON(n.Span.Start.Line, n.Span.Start.Column, n.Span.End.Line, n.Span.End.Column),
	}

	if n.Token != nil {
		jn.TokenKind = n.Token.Kind.String()
		jn.Token = n.Token.Literal
	}

	if n.Error != nil {
		jn.Error = n.Error.Message
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
