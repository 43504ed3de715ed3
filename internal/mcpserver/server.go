// Package mcpserver exposes the site mutation tools over the Model Context
// Protocol, so external MCP clients can edit a stored site directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/plumeworks/siteagent/internal/logger"
	"github.com/plumeworks/siteagent/internal/persist"
	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
	"github.com/plumeworks/siteagent/internal/tools"
)

// Server serves one stored site's mutation tools over MCP stdio.
type Server struct {
	mcp      *server.MCPServer
	executor *tools.Executor
	store    *persist.Store
	siteID   int64
}

// New builds an MCP server bound to a named site in the store. Every tool
// call loads the stored document, applies the mutation, and writes the
// result back on success.
func New(reg *schema.Registry, store *persist.Store, siteName, version string) (*Server, error) {
	record, err := store.GetOrCreateSite(siteName)
	if err != nil {
		return nil, fmt.Errorf("failed to open site %q: %w", siteName, err)
	}

	s := &Server{
		mcp:      server.NewMCPServer("siteagent", version),
		executor: tools.NewExecutor(reg),
		store:    store,
		siteID:   record.ID,
	}

	for _, spec := range tools.Catalog(reg) {
		tool := mcp.NewToolWithRawSchema(spec.Name, spec.Description, spec.InputSchema)
		s.mcp.AddTool(tool, s.handler(spec.Name))
	}

	return s, nil
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := json.Marshal(req.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		doc, err := s.loadDocument()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load site: %v", err)), nil
		}

		result := s.executor.Execute(name, doc, input)
		if !result.Success {
			return mcp.NewToolResultError(result.Message), nil
		}

		if err := s.saveDocument(result.Doc); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("mutation succeeded but save failed: %v", err)), nil
		}

		logger.Debug("[MCP] %s: %s", name, result.Message)
		return mcp.NewToolResultText(result.Message), nil
	}
}

func (s *Server) loadDocument() (*site.Document, error) {
	record, err := s.store.GetSiteByID(s.siteID)
	if err != nil {
		return nil, err
	}
	if record.Document == "" {
		return nil, nil
	}
	return site.Decode([]byte(record.Document))
}

func (s *Server) saveDocument(doc *site.Document) error {
	if doc == nil {
		return nil
	}
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	return s.store.SaveDocument(s.siteID, string(data))
}

// ServeStdio blocks serving MCP over stdin/stdout until the client hangs up.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
