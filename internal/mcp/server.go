package mcp

import (
	"context"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	closer  func() error
}

func prTool(name, description string, extra ...mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString("repository",
			mcp.Required(),
			mcp.Description("Repository as owner/name or URL (e.g., 'acme/widgets')"),
		),
		mcp.WithNumber("pr_number",
			mcp.Required(),
			mcp.Description("The pull request number (e.g., 42)"),
		),
	}
	return mcp.NewTool(name, append(opts, extra...)...)
}

func toolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"summarize_pr": prTool("summarize_pr",
			"Generate a title and bulleted description for a pull request from its changed files. Does not post anything."),
		"post_pr_summary": prTool("post_pr_summary",
			"Generate a pull request summary and post it as a comment on the pull request."),
		"summary_history": prTool("summary_history",
			"List summaries previously posted to a pull request, newest first.",
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of runs to return (default: 10)"),
			),
		),
	}
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"pr-summary",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	definitions := toolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			log.Printf("mcp: no definition for tool %q, skipping", name)
			continue
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		closer:  cfg.Closer,
	}
}

func (s *Server) Close() {
	if s.closer != nil {
		if err := s.closer(); err != nil {
			log.Printf("error closing resources: %v", err)
		}
	}
}
