package parser

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/groovy/groovy/lexer"
	"github.com/dhamidi/groovy/groovy/tree"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithDeepParsing parses block bodies eagerly instead of collapsing them
// into lazy leaves.
func WithDeepParsing() Option {
	return func(p *Parser) {
		p.deep = true
	}
}

func WithDialect(d Dialect) Option {
	return func(p *Parser) {
		p.dialect = d
	}
}

func WithLogger(logger commonlog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

type Parser struct {
	file    string
	deep    bool
	dialect Dialect
	logger  commonlog.Logger
	reader  io.Reader
	input   []byte
	entry   Rule
	session *Session
	root    *tree.Node
}

func ParseFile(r io.Reader, opts ...Option) *Parser {
	return newParser(r, parseFile, opts)
}

func ParseExpression(r io.Reader, opts ...Option) *Parser {
	return newParser(r, parseExpressionEntry, opts)
}

func newParser(r io.Reader, entry Rule, opts []Option) *Parser {
	p := &Parser{reader: r, entry: entry}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return fmt.Errorf("read %s: %w", p.displayName(), err)
	}
	p.input = data
	return nil
}

func (p *Parser) displayName() string {
	if p.file == "" {
		return "input"
	}
	return p.file
}

func (p *Parser) newSession(text []byte) *Session {
	b := tree.NewBuilder(text, lexer.Tokenize(text, p.file))
	return newSession(b, p.deep, p.dialect, p.logger)
}

// Finish parses the input and returns the tree. Syntax errors do not fail
// the parse; they are error nodes in the tree and are listed by Diagnostics.
func (p *Parser) Finish() (*tree.Node, error) {
	if err := p.readAll(); err != nil {
		return nil, err
	}
	p.session = p.newSession(p.input)
	p.entry(p.session, 0)
	root, err := p.session.b.Tree()
	if err != nil {
		return nil, fmt.Errorf("build tree for %s: %w", p.displayName(), err)
	}
	p.root = root
	return root, nil
}

// Input returns the source text read by Finish.
func (p *Parser) Input() []byte {
	return p.input
}

// Diagnostics lists the errors recorded in the tree returned by Finish.
func (p *Parser) Diagnostics() []Diagnostic {
	if p.root == nil {
		return nil
	}
	return CollectDiagnostics(p.root)
}

func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.session = nil
	p.root = nil
}
