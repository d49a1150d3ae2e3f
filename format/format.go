// Package format renders Groovy parse trees, diagnostics and token streams.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/groovy/groovy/parser"
	"github.com/dhamidi/groovy/groovy/tree"
)

// TreeEncoder writes a parse tree together with its diagnostics.
type TreeEncoder interface {
	Encode(root *tree.Node, diags []parser.Diagnostic) error
}

// NewTreeEncoder returns the encoder registered under name: json, text or
// sexp. positions only affects the text encoder.
func NewTreeEncoder(name string, w io.Writer, positions bool) (TreeEncoder, error) {
	switch name {
	case "json":
		return NewASTJSONEncoder(w), nil
	case "text":
		return NewTextEncoder(w, positions), nil
	case "sexp":
		return NewSexpEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected json, text, or sexp)", name)
	}
}

// TextEncoder writes the indented tree dump followed by one line per
// diagnostic.
type TextEncoder struct {
	w         io.Writer
	positions bool
}

func NewTextEncoder(w io.Writer, positions bool) *TextEncoder {
	return &TextEncoder{w: w, positions: positions}
}

func (e *TextEncoder) Encode(root *tree.Node, diags []parser.Diagnostic) error {
	dump := root.String()
	if e.positions {
		dump = root.StringWithPositions()
	}
	if _, err := io.WriteString(e.w, dump); err != nil {
		return err
	}
	return writeDiagnostics(e.w, diags)
}

type SexpEncoder struct {
	w io.Writer
}

func NewSexpEncoder(w io.Writer) *SexpEncoder {
	return &SexpEncoder{w: w}
}

func (e *SexpEncoder) Encode(root *tree.Node, diags []parser.Diagnostic) error {
	if _, err := fmt.Fprintln(e.w, root.Sexp()); err != nil {
		return err
	}
	return writeDiagnostics(e.w, diags)
}

func writeDiagnostics(w io.Writer, diags []parser.Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "error: %s\n", d); err != nil {
			return err
		}
	}
	return nil
}
