package db

import (
	"time"

	"github.com/uptrace/bun"
)

// SummaryRun records one published pull request summary.
type SummaryRun struct {
	bun.BaseModel `bun:"table:summary_runs"`

	ID              int64     `bun:"id,pk,autoincrement"`
	Owner           string    `bun:"owner,notnull"`
	Repo            string    `bun:"repo,notnull"`
	PRNumber        int       `bun:"pr_number,notnull"`
	HeadCommitSHA   string    `bun:"head_commit_sha"`
	CommentID       *int64    `bun:"comment_id"`
	CommentURL      *string   `bun:"comment_url"`
	Model           string    `bun:"model"`
	DiffChars       int       `bun:"diff_chars"`
	Successful      bool      `bun:"successful"`
	FailureCategory *string   `bun:"failure_category"`
	FailureReason   *string   `bun:"failure_reason"`
	Summary         string    `bun:"summary"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
