package lsp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/parser"
)

type published struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func newTestServer(t *testing.T) (*Server, *glsp.Context, *[]published) {
	t.Helper()
	ls := NewServer("test")
	_, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	var sent []published
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			sent = append(sent, published{method: method, params: params.(protocol.PublishDiagnosticsParams)})
		},
	}
	return ls, ctx, &sent
}

func TestServerPublishesDiagnosticsOnOpen(t *testing.T) {
	ls, ctx, sent := newTestServer(t)

	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///work/Main.groovy",
			Text: "class Foo {\n  Bar() {}\n}",
		},
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, msg.method)
	require.Equal(t, "file:///work/Main.groovy", msg.params.URI)
	require.Len(t, msg.params.Diagnostics, 1)
	require.Equal(t, "method return type expected", msg.params.Diagnostics[0].Message)
	require.Equal(t, protocol.UInteger(1), msg.params.Diagnostics[0].Range.Start.Line)
	require.Equal(t, protocol.UInteger(2), msg.params.Diagnostics[0].Range.Start.Character)

	require.NotNil(t, ls.workspace.GetFile("/work/Main.groovy"))
}

func TestServerChangeAndClose(t *testing.T) {
	ls, ctx, sent := newTestServer(t)
	uri := "file:///work/Main.groovy"

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "def x = 1"}},
	}))
	require.Len(t, *sent, 1)
	require.Empty(t, (*sent)[0].params.Diagnostics)
	require.NotNil(t, (*sent)[0].params.Diagnostics)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, *sent, 2)
	require.Empty(t, (*sent)[1].params.Diagnostics)
}

func TestServerDocumentSymbols(t *testing.T) {
	ls, ctx, _ := newTestServer(t)
	uri := "file:///work/Main.groovy"
	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  uri,
			Text: "class Foo {\n  int count\n  Foo() {}\n  def run() {}\n}\ndef x = 1",
		},
	}))

	result, err := ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols := result.([]protocol.DocumentSymbol)

	require.Len(t, symbols, 2)
	require.Equal(t, "Foo", symbols[0].Name)
	require.Equal(t, protocol.SymbolKindClass, symbols[0].Kind)
	require.Equal(t, "x", symbols[1].Name)
	require.Equal(t, protocol.SymbolKindVariable, symbols[1].Kind)

	members := symbols[0].Children
	require.Len(t, members, 3)
	require.Equal(t, "count", members[0].Name)
	require.Equal(t, protocol.SymbolKindField, members[0].Kind)
	require.Equal(t, "Foo", members[1].Name)
	require.Equal(t, protocol.SymbolKindConstructor, members[1].Kind)
	require.Equal(t, "run", members[2].Name)
	require.Equal(t, protocol.SymbolKindMethod, members[2].Kind)
}

func TestToProtocolDiagnostics(t *testing.T) {
	diags := []parser.Diagnostic{{
		Span: lexer.Span{
			Start: lexer.Position{Line: 3, Column: 5},
			End:   lexer.Position{Line: 3, Column: 9},
		},
		Message: "boom",
	}}

	got := toProtocolDiagnostics(diags)
	require.Len(t, got, 1)
	require.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 2, Character: 8},
	}, got[0].Range)
	require.Equal(t, protocol.DiagnosticSeverityError, *got[0].Severity)
	require.Equal(t, lsName, *got[0].Source)

	require.NotNil(t, toProtocolDiagnostics(nil))
}

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///work/src/Main.groovy")
	require.NoError(t, err)
	require.Equal(t, "/work/src/Main.groovy", path)

	path, err = uriToPath("untitled:1")
	require.NoError(t, err)
	require.Equal(t, "untitled:1", path)

	require.Equal(t, "file:///work/src/Main.groovy", pathToURI("/work/src/Main.groovy"))
}

func TestServerCloseStopsDiskUpdates(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "Main.groovy")
	writeFile(t, path, "foo(")
	uri := pathToURI(path)

	ls := NewServer("test")
	_, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{RootPath: &root})
	require.NoError(t, err)

	var sent []published
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			sent = append(sent, published{method: method, params: params.(protocol.PublishDiagnosticsParams)})
		},
	}
	fw := NewFileWatcher(ls.workspace, func(path string, doc *Document) {
		ls.publish(pathToURI(path), doc)
	})

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "def x = 1"},
	}))
	require.Len(t, sent, 1)

	// the editor buffer wins over the broken file on disk
	fw.scan()
	require.Len(t, sent, 1)
	require.Empty(t, ls.workspace.GetFile(path).Diagnostics)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, sent, 2)
	require.Empty(t, sent[1].params.Diagnostics)
	require.Nil(t, ls.workspace.GetFile(path))
	require.False(t, ls.workspace.IsOpen(path))

	fw.scan()
	require.Len(t, sent, 2)
}
