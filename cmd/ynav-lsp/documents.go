package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/debug"
	"github.com/signadot/yamlnav/engine"
	"github.com/signadot/yamlnav/token"

	"go.lsp.dev/protocol"
)

type buffer struct {
	uri     string
	content string
	version int32
	roots   []yamlnav.Node
	err     error
}

type documentStore struct {
	mu     sync.RWMutex
	engine engine.Engine
	docs   map[string]*buffer
}

func (ds *documentStore) get(uri string) *buffer {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *buffer {
	doc := newBuffer(ds.engine, uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// newBuffer parses every document in content. On failure the content
// is kept with no roots so that diagnostics can report the error.
func newBuffer(e engine.Engine, uri, content string, version int32) *buffer {
	roots, err := yamlnav.LoadAll([]byte(content), yamlnav.LoadEngine(e))
	if err != nil && debug.LSP() {
		debug.Logf("%s v%d: %v\n", uri, version, err)
	}
	return &buffer{
		uri:     uri,
		content: content,
		version: version,
		roots:   roots,
		err:     err,
	}
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *buffer) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *buffer) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  doc.err.Error(),
	}
	var pe *engine.ParseError
	if errors.As(doc.err, &pe) {
		d.Message = pe.Msg
		if pe.Mark != nil {
			start := protocol.Position{Line: uint32(pe.Mark.Line), Character: uint32(pe.Mark.Column)}
			end := start
			end.Character++
			d.Range = protocol.Range{Start: start, End: end}
		}
	}
	return append(res, d)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChanges applies content changes in order. A change with a zero
// range replaces the whole content.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) {
			content = change.Text
			continue
		}
		p := token.NewPosDoc([]byte(content))
		start := p.Offset(int(r.Start.Line), int(r.Start.Character))
		end := p.Offset(int(r.End.Line), int(r.End.Character))
		if start > end {
			continue
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}
