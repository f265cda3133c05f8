package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/pr-summary/internal/pullrequest"
	"github.com/roivaz/pr-summary/internal/summarizer"
	"github.com/roivaz/pr-summary/internal/summary"
)

type SummaryService interface {
	Preview(ctx context.Context, ref pullrequest.Ref) (summary.Result, error)
	Post(ctx context.Context, ref pullrequest.Ref) (summarizer.Outcome, error)
}

// SummarizePRHandler generates a summary without commenting on the pull request.
type SummarizePRHandler struct {
	Service SummaryService
}

func (h *SummarizePRHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := parseRef(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.Preview(ctx, ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := struct {
		PullRequest string `json:"pull_request"`
		summary.Result
	}{PullRequest: ref.String(), Result: result}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}

// PostPRSummaryHandler runs the full pipeline and comments on the pull request.
type PostPRSummaryHandler struct {
	Service SummaryService
}

func (h *PostPRSummaryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := parseRef(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outcome, err := h.Service.Post(ctx, ref)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := struct {
		PullRequest string `json:"pull_request"`
		Published   bool   `json:"published"`
		CommentID   int64  `json:"comment_id,omitempty"`
		CommentURL  string `json:"comment_url,omitempty"`
		HeadSHA     string `json:"head_sha,omitempty"`
		summary.Result
	}{
		PullRequest: ref.String(),
		Published:   outcome.Published,
		CommentID:   outcome.Comment.ID,
		CommentURL:  outcome.Comment.URL,
		HeadSHA:     outcome.Comment.HeadSHA,
		Result:      outcome.Result,
	}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
