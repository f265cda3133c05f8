package mcp

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/pr-summary/internal/mcp/tools"
	"github.com/roivaz/pr-summary/internal/summarizer"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Closer       func() error
}

// DefaultConfig wires the tools against the configured GitHub and LLM
// endpoints. summary_history is only registered when a Postgres URL is set,
// and reads from the same pool the summarizer records into.
func DefaultConfig(ctx context.Context, base logr.Logger) (Config, error) {
	cfg, err := summarizer.LoadConfig()
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.Logger = base

	rt, err := summarizer.Build(ctx, cfg)
	if err != nil {
		return Config{}, err
	}

	adapters := map[string]ToolAdapter{
		"summarize_pr":    &tools.SummarizePRHandler{Service: rt.Summarizer},
		"post_pr_summary": &tools.PostPRSummaryHandler{Service: rt.Summarizer},
	}
	if rt.Ledger != nil {
		adapters["summary_history"] = &tools.SummaryHistoryHandler{Service: rt.Ledger}
	}

	return Config{
		ToolAdapters: adapters,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Closer: rt.Close,
	}, nil
}
