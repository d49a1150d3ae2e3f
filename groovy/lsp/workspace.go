// Package lsp serves Groovy parse diagnostics and document outlines over the
// Language Server Protocol.
package lsp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/groovy/groovy/parser"
	"github.com/dhamidi/groovy/groovy/tree"
)

var log = commonlog.GetLogger("groovy.lsp")

// sourceExtensions lists the file extensions parsed as Groovy.
var sourceExtensions = map[string]bool{
	".groovy": true,
	".gradle": true,
	".gvy":    true,
}

func isGroovySource(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// ErrDocumentOpen is returned by ScanFile for a file whose content is owned
// by the editor.
var ErrDocumentOpen = errors.New("document is open in the editor")

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	opts    []parser.Option
	files   map[string]*Document
	open    map[string]bool
}

// Document is the latest parse of one file.
type Document struct {
	Path        string
	Content     []byte
	Tree        *tree.Node
	Diagnostics []parser.Diagnostic
	ParseErr    error
}

func NewWorkspace(rootDir string, opts ...parser.Option) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		opts:    opts,
		files:   make(map[string]*Document),
		open:    make(map[string]bool),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isGroovySource(path) {
			w.ScanFile(path)
		}
		return nil
	})
}

// ScanFile reparses path from disk. Open documents are left alone.
func (w *Workspace) ScanFile(path string) error {
	if w.IsOpen(path) {
		return ErrDocumentOpen
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses path from content and returns the new document.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	opts := append([]parser.Option{parser.WithFile(filepath.Base(path))}, w.opts...)
	p := parser.ParseFile(bytes.NewReader(content), opts...)
	root, err := p.Finish()

	doc := &Document{
		Path:        path,
		Content:     content,
		Tree:        root,
		Diagnostics: p.Diagnostics(),
		ParseErr:    err,
	}
	log.Debugf("parsed %s: %d diagnostics", path, len(doc.Diagnostics))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

// OpenFile marks path as owned by the editor and parses content.
func (w *Workspace) OpenFile(path string, content []byte) *Document {
	w.mu.Lock()
	w.open[path] = true
	w.mu.Unlock()
	return w.UpdateFile(path, content)
}

// CloseFile releases an open document and forgets its parse.
func (w *Workspace) CloseFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.open, path)
	delete(w.files, path)
}

func (w *Workspace) IsOpen(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.open[path]
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the paths of all known documents.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	return paths
}
