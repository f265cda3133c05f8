package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/pr-summary/internal/db"
)

type HistoryService interface {
	RunsForPR(ctx context.Context, owner, repo string, number, limit int) ([]db.SummaryRun, error)
}

type SummaryHistoryHandler struct {
	Service HistoryService
}

func (h *SummaryHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	ref, err := parseRef(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := 10
	if v, err := parseIntArgument("limit", args["limit"]); err == nil {
		limit = v
	}

	runs, err := h.Service.RunsForPR(ctx, ref.Owner, ref.Repo, ref.Number, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load summary history for %s: %v", ref, err)), nil
	}

	type runView struct {
		HeadSHA         string  `json:"head_sha"`
		CommentURL      *string `json:"comment_url,omitempty"`
		Successful      bool    `json:"successful"`
		FailureCategory *string `json:"failure_category,omitempty"`
		Model           string  `json:"model"`
		CreatedAt       string  `json:"created_at"`
	}
	views := make([]runView, 0, len(runs))
	for _, r := range runs {
		views = append(views, runView{
			HeadSHA:         r.HeadCommitSHA,
			CommentURL:      r.CommentURL,
			Successful:      r.Successful,
			FailureCategory: r.FailureCategory,
			Model:           r.Model,
			CreatedAt:       r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	response := struct {
		PullRequest string    `json:"pull_request"`
		Runs        []runView `json:"runs"`
		Total       int       `json:"total_found"`
	}{PullRequest: ref.String(), Runs: views, Total: len(views)}
	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
