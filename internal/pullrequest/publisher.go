package pullrequest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v66/github"

	"github.com/roivaz/pr-summary/internal/logging"
)

// Comment describes an issue comment created by the Publisher.
type Comment struct {
	ID      int64
	URL     string
	HeadSHA string
}

// issueCommentRequest mirrors the REST payload. github.IssueComment has no
// commit_id field, so the request is built by hand.
type issueCommentRequest struct {
	Body     string `json:"body"`
	CommitID string `json:"commit_id,omitempty"`
}

type Publisher struct {
	client *github.Client
	log    logging.Logger
}

func NewPublisher(client *github.Client, log logr.Logger) *Publisher {
	return &Publisher{client: client, log: logging.New(log).WithName("publisher")}
}

// Publish resolves the pull request head commit and posts body as a comment on
// the pull request's issue thread. Errors from either call are returned as is;
// nothing is retried.
func (p *Publisher) Publish(ctx context.Context, ref Ref, body string) (Comment, error) {
	pr, _, err := p.client.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return Comment{}, fmt.Errorf("get pull request %s: %w", ref, err)
	}
	headSHA := pr.GetHead().GetSHA()

	u := fmt.Sprintf("repos/%v/%v/issues/%d/comments", ref.Owner, ref.Repo, ref.Number)
	req, err := p.client.NewRequest(http.MethodPost, u, &issueCommentRequest{Body: body, CommitID: headSHA})
	if err != nil {
		return Comment{}, fmt.Errorf("build comment request: %w", err)
	}

	created := new(github.IssueComment)
	if _, err := p.client.Do(ctx, req, created); err != nil {
		return Comment{}, fmt.Errorf("create comment on %s: %w", ref, err)
	}

	p.log.Info("posted summary comment", "pr", ref.String(), "comment_id", created.GetID(), "head_sha", headSHA)
	return Comment{ID: created.GetID(), URL: created.GetHTMLURL(), HeadSHA: headSHA}, nil
}
