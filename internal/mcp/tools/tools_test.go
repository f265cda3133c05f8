package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/pr-summary/internal/db"
	"github.com/roivaz/pr-summary/internal/pullrequest"
	"github.com/roivaz/pr-summary/internal/summarizer"
	"github.com/roivaz/pr-summary/internal/summary"
)

type fakeSummaryService struct {
	refs    []pullrequest.Ref
	result  summary.Result
	outcome summarizer.Outcome
	err     error
}

func (f *fakeSummaryService) Preview(ctx context.Context, ref pullrequest.Ref) (summary.Result, error) {
	f.refs = append(f.refs, ref)
	return f.result, f.err
}

func (f *fakeSummaryService) Post(ctx context.Context, ref pullrequest.Ref) (summarizer.Outcome, error) {
	f.refs = append(f.refs, ref)
	return f.outcome, f.err
}

type fakeHistoryService struct {
	runs  []db.SummaryRun
	limit int
	err   error
}

func (f *fakeHistoryService) RunsForPR(ctx context.Context, owner, repo string, number, limit int) ([]db.SummaryRun, error) {
	f.limit = limit
	return f.runs, f.err
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestSummarizePRHandler(t *testing.T) {
	svc := &fakeSummaryService{result: summary.Result{Text: "Pull Request Name: x", Successful: true}}
	h := &SummarizePRHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"repository": "acme/widgets",
		"pr_number":  float64(42),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, []pullrequest.Ref{{Owner: "acme", Repo: "widgets", Number: 42}}, svc.refs)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, "acme/widgets#42", body["pull_request"])
	assert.Equal(t, "Pull Request Name: x", body["text"])
	assert.Equal(t, true, body["successful"])
}

func TestSummarizePRHandler_BadArguments(t *testing.T) {
	svc := &fakeSummaryService{}
	h := &SummarizePRHandler{Service: svc}

	for _, args := range []map[string]any{
		{"pr_number": float64(1)},
		{"repository": "acme/widgets"},
		{"repository": "acme/widgets", "pr_number": float64(-3)},
	} {
		res, err := h.ToolAdapter(context.Background(), callRequest(args))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	}
	assert.Empty(t, svc.refs)
}

func TestPostPRSummaryHandler(t *testing.T) {
	svc := &fakeSummaryService{outcome: summarizer.Outcome{
		Published: true,
		Comment:   pullrequest.Comment{ID: 5, URL: "https://example/5", HeadSHA: "abc"},
		Result:    summary.Result{Text: summary.Sentinel, FailureCategory: summary.FailureCategoryQueryTooLarge},
	}}
	h := &PostPRSummaryHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"repository": "https://github.com/acme/widgets",
		"pr_number":  float64(42),
	}))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, true, body["published"])
	assert.Equal(t, float64(5), body["comment_id"])
	assert.Equal(t, "abc", body["head_sha"])
	assert.Equal(t, "query_too_large", body["failure_category"])
}

func TestPostPRSummaryHandler_ServiceError(t *testing.T) {
	h := &PostPRSummaryHandler{Service: &fakeSummaryService{err: errors.New("403 Forbidden")}}
	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"repository": "acme/widgets",
		"pr_number":  float64(42),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestSummaryHistoryHandler(t *testing.T) {
	category := "timeout"
	svc := &fakeHistoryService{runs: []db.SummaryRun{
		{HeadCommitSHA: "abc", Successful: false, FailureCategory: &category, Model: "gpt-test", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}}
	h := &SummaryHistoryHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"repository": "acme/widgets",
		"pr_number":  float64(42),
		"limit":      float64(3),
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, svc.limit)

	var body struct {
		Runs []struct {
			HeadSHA         string `json:"head_sha"`
			FailureCategory string `json:"failure_category"`
			CreatedAt       string `json:"created_at"`
		} `json:"runs"`
		Total int `json:"total_found"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "abc", body.Runs[0].HeadSHA)
	assert.Equal(t, "timeout", body.Runs[0].FailureCategory)
	assert.Equal(t, "2024-05-01T10:00:00Z", body.Runs[0].CreatedAt)
}

func TestSummaryHistoryHandler_ServiceError(t *testing.T) {
	h := &SummaryHistoryHandler{Service: &fakeHistoryService{err: errors.New("relation \"summary_runs\" does not exist")}}
	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"repository": "acme/widgets",
		"pr_number":  float64(42),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "acme/widgets#42")
	assert.Contains(t, resultText(t, res), "summary_runs")
}
