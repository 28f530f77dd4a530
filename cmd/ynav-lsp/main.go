package main

import (
	"context"
	"io"
	"os"

	"github.com/signadot/yamlnav/engine"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const (
	lsName  = "ynav-lsp"
	version = "0.0.1"
)

func main() {
	ctx := context.Background()
	server := newServer(engineFromEnv())
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(stdio{os.Stdin, os.Stdout}))
	server.conn = conn
	conn.Go(ctx, protocol.ServerHandler(server, nil))
	<-conn.Done()
}

// engineFromEnv selects the document engine named by YAMLNAV_ENGINE,
// falling back to the default engine.
func engineFromEnv() engine.Engine {
	name := os.Getenv("YAMLNAV_ENGINE")
	if name == "" {
		return engine.Default
	}
	e, err := engine.Lookup(name)
	if err != nil {
		return engine.Default
	}
	return e
}

// stdio joins stdin and stdout into the connection stream.
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error { return nil }

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

func newServer(e engine.Engine) *Server {
	return &Server{
		docs: &documentStore{
			engine: e,
			docs:   make(map[string]*buffer),
		},
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindIncremental,
			OpenClose: true,
			Save:      &protocol.SaveOptions{IncludeText: false},
		},
		HoverProvider:          true,
		DocumentSymbolProvider: true,
		FoldingRangeProvider:   true,
		SemanticTokensProvider: map[string]interface{}{
			"full":  true,
			"range": true,
			"legend": protocol.SemanticTokensLegend{
				TokenTypes:     tokenTypes,
				TokenModifiers: []protocol.SemanticTokenModifiers{},
			},
		},
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}
