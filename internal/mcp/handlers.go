package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
)

// handleListDocuments lists the library, optionally filtered.
func (s *Server) handleListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.backend.ListContracts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing documents failed: %s", api.Message(err))), nil
	}

	docs = document.FilterSummaries(docs,
		request.GetString("query", ""),
		request.GetString("risk_level", ""),
	)
	if len(docs) == 0 {
		return mcp.NewToolResultText("No documents found. Analyze a contract with `lexdesk analyze` first."), nil
	}

	return mcp.NewToolResultText(formatDocuments(docs)), nil
}

// handleGetDocument returns the view model of one document as JSON.
func (s *Server) handleGetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: document_id"), nil
	}

	loaded, err := document.Load(ctx, s.backend, id, nil)
	if err != nil {
		s.log.WithError(err).WithField("document_id", id).Warn("mcp: loading document")
		if errors.Is(err, document.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Document %q not found.", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("loading document failed: %v", err)), nil
	}

	return mcp.NewToolResultText(loaded.Model.JSON()), nil
}

// handleAskLegalQuestion forwards a question to the Q&A endpoint.
func (s *Server) handleAskLegalQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil || strings.TrimSpace(question) == "" {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}
	lang := request.GetString("language", s.language)

	res, err := s.backend.Ask(ctx, strings.TrimSpace(question), lang)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("question failed: %s", api.Message(err))), nil
	}

	return mcp.NewToolResultText(res.Answer), nil
}

// formatDocuments renders a compact listing for agent consumption.
func formatDocuments(docs []api.ContractSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d document(s):\n", len(docs)))

	for _, d := range docs {
		title := d.Title
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("\n[%s] %s\n", d.ID, title))
		if d.RiskLevel != "" {
			risk := d.RiskLevel
			if d.RiskScore != nil {
				risk += fmt.Sprintf(" (%d)", *d.RiskScore)
			}
			sb.WriteString(fmt.Sprintf("Risk: %s\n", risk))
		}
		if d.IsFavorite {
			sb.WriteString("Favorite: yes\n")
		}
		if d.CreatedAt != "" {
			sb.WriteString(fmt.Sprintf("Created: %s\n", d.CreatedAt))
		}
		if d.Summary != "" {
			sb.WriteString(d.Summary)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
