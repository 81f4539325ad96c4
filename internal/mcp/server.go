package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Backend is what the tools read the library through.
type Backend interface {
	document.Backend
	ListContracts(ctx context.Context) ([]api.ContractSummary, error)
	Ask(ctx context.Context, question, language string) (*api.AskResult, error)
}

// Server wraps an MCP server that exposes the document library to agents.
type Server struct {
	backend  Backend
	language string
	log      logrus.FieldLogger
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server. language is the default answer
// language for ask_legal_question.
func NewServer(backend Backend, language string, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{
		backend:  backend,
		language: language,
		log:      log,
	}

	s.mcp = server.NewMCPServer(
		"lexdesk",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listDocumentsTool, s.handleListDocuments)
	s.mcp.AddTool(getDocumentTool, s.handleGetDocument)
	s.mcp.AddTool(askLegalQuestionTool, s.handleAskLegalQuestion)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
