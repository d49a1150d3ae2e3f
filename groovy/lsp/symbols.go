package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/parser"
	"github.com/dhamidi/groovy/groovy/tree"
)

// documentSymbols outlines the classes, members and top-level variables
// declared in root.
func documentSymbols(root *tree.Node) []protocol.DocumentSymbol {
	if root == nil {
		return nil
	}
	return collectSymbols(root)
}

func collectSymbols(n *tree.Node) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, child := range n.Children {
		switch child.Kind {
		case tree.KindClassDefinition:
			sym, ok := newSymbol(child, child, protocol.SymbolKindClass)
			if !ok {
				continue
			}
			if body := child.FirstChildOfKind(tree.KindClassBody); body != nil {
				sym.Children = collectSymbols(body)
			}
			symbols = append(symbols, sym)
		case tree.KindMethod:
			if sym, ok := newSymbol(child, child, protocol.SymbolKindMethod); ok {
				symbols = append(symbols, sym)
			}
		case tree.KindConstructor:
			if sym, ok := newSymbol(child, child, protocol.SymbolKindConstructor); ok {
				symbols = append(symbols, sym)
			}
		case tree.KindField:
			symbols = append(symbols, variableSymbols(child, protocol.SymbolKindField)...)
		case tree.KindVariableDeclaration:
			symbols = append(symbols, variableSymbols(child, protocol.SymbolKindVariable)...)
		}
	}
	return symbols
}

func variableSymbols(decl *tree.Node, kind protocol.SymbolKind) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, v := range decl.ChildrenOfKind(tree.KindVariable) {
		if sym, ok := newSymbol(v, decl, kind); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// newSymbol names a symbol after the first identifier token directly under
// named. The symbol covers the span of whole.
func newSymbol(named, whole *tree.Node, kind protocol.SymbolKind) (protocol.DocumentSymbol, bool) {
	name := nameToken(named)
	if name == nil {
		return protocol.DocumentSymbol{}, false
	}
	return protocol.DocumentSymbol{
		Name:           name.TokenLiteral(),
		Kind:           kind,
		Range:          toRange(whole.Span),
		SelectionRange: toRange(name.Span),
	}, true
}

func nameToken(n *tree.Node) *tree.Node {
	for _, child := range n.Children {
		if child.Kind == tree.KindToken && child.Token != nil && child.Token.Kind == lexer.TokenIdent {
			return child
		}
	}
	return nil
}

func toProtocolDiagnostics(diags []parser.Diagnostic) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	result := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		result = append(result, protocol.Diagnostic{
			Range:    toRange(d.Span),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return result
}

func toRange(span lexer.Span) protocol.Range {
	return protocol.Range{
		Start: toPosition(span.Start),
		End:   toPosition(span.End),
	}
}

// toPosition converts a 1-based line and byte column to a 0-based protocol
// position.
func toPosition(pos lexer.Position) protocol.Position {
	line, col := pos.Line-1, pos.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}
