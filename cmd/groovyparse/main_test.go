package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{
			name:  "command expression",
			stdin: "foo bar",
			args:  []string{"parse", "-"},
			want:  "(File (ApplicationExpression (ReferenceExpression foo) (ArgumentList (ReferenceExpression bar))))\n",
		},
		{
			name:  "expression",
			stdin: "a == b",
			args:  []string{"parse", "--expression", "-"},
			want:  "(EqualityExpression (ReferenceExpression a) == (ReferenceExpression b))\n",
		},
		{
			name:    "syntax error",
			stdin:   "foo(1 2)",
			args:    []string{"parse", "-"},
			wantErr: errSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				require.Contains(t, out, "error: ")
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				require.Equal(t, tt.want, out)
			}
		})
	}
}

func TestParseCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Main.groovy")
	require.NoError(t, os.WriteFile(path, []byte("class Foo {\n  Bar() {}\n}"), 0o644))

	out, err := run(t, "", "parse", "-f", "text", path)
	require.ErrorIs(t, err, errSyntax)
	require.Contains(t, out, "error: 2:3: method return type expected")

	_, err = run(t, "", "parse", filepath.Join(t.TempDir(), "missing.groovy"))
	require.Error(t, err)
	require.False(t, errors.Is(err, errSyntax))
}

func TestParseCommandUnknownFormat(t *testing.T) {
	_, err := run(t, "x", "parse", "-f", "yaml", "-")
	require.EqualError(t, err, "unknown format: yaml (expected json, text, or sexp)")
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "def x", "tokens", "-")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "1:1\tdef\t\"def\"\n1:5\tIdentifier\t\"x\"\n"), out)
	require.NotContains(t, out, "Whitespace")

	out, err = run(t, "def x", "tokens", "--trivia", "-")
	require.NoError(t, err)
	require.Contains(t, out, "Whitespace")
}

func TestCheckBlockCommand(t *testing.T) {
	out, err := run(t, "{ a }", "check-block", "-")
	require.NoError(t, err)
	require.Equal(t, "parseable\n", out)

	out, err = run(t, "{ a", "check-block", "-")
	require.ErrorIs(t, err, errSyntax)
	require.Equal(t, "not parseable\n", out)

	out, err = run(t, "{ println 1 }", "check-block", "--expand", "-")
	require.NoError(t, err)
	require.Equal(t, "(Block { (ApplicationExpression (ReferenceExpression println) (ArgumentList (Literal 1))) })\n", out)
}

func TestGrammarCommand(t *testing.T) {
	out, err := run(t, "", "grammar")
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "File = Statements ."), out)

	out, err = run(t, "", "grammar", "--productions")
	require.NoError(t, err)
	require.Contains(t, strings.Split(out, "\n"), "EqualityExpression")

	path := filepath.Join(t.TempDir(), "bad.ebnf")
	require.NoError(t, os.WriteFile(path, []byte("A = B ."), 0o644))
	out, err = run(t, "", "grammar", "check", "--start", "A", path)
	require.ErrorIs(t, err, errSyntax)
	require.Contains(t, out, "missing production B")
}
