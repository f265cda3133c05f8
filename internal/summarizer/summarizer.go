package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/roivaz/pr-summary/internal/db"
	"github.com/roivaz/pr-summary/internal/logging"
	"github.com/roivaz/pr-summary/internal/pullrequest"
	"github.com/roivaz/pr-summary/internal/summary"
)

// ErrSummaryFailed is returned by Post when generation failed and the
// configuration says not to publish the sentinel text.
var ErrSummaryFailed = errors.New("summary generation failed")

type DiffCollector interface {
	CollectDiff(ctx context.Context, ref pullrequest.Ref) (string, error)
}

type SummaryGenerator interface {
	Generate(ctx context.Context, diff string) summary.Result
}

type CommentPublisher interface {
	Publish(ctx context.Context, ref pullrequest.Ref, body string) (pullrequest.Comment, error)
}

type Recorder interface {
	Record(ctx context.Context, run *db.SummaryRun) error
}

// Outcome reports what one Post call did.
type Outcome struct {
	Ref       pullrequest.Ref
	Result    summary.Result
	Comment   pullrequest.Comment
	Published bool
}

type Summarizer struct {
	cfg       Config
	log       logging.Logger
	collector DiffCollector
	generator SummaryGenerator
	publisher CommentPublisher
	recorder  Recorder
}

type Option func(*Summarizer)

// WithRecorder stores every published summary in r. Recorder errors are
// logged and never fail the run.
func WithRecorder(r Recorder) Option {
	return func(s *Summarizer) { s.recorder = r }
}

func New(cfg Config, collector DiffCollector, generator SummaryGenerator, publisher CommentPublisher, opts ...Option) *Summarizer {
	s := &Summarizer{
		cfg:       cfg,
		log:       logging.New(cfg.Logger).WithName("summarizer"),
		collector: collector,
		generator: generator,
		publisher: publisher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PostPRSummary collects the diff of pull request pullNumber in repository,
// generates a summary and posts it as an issue comment.
func (s *Summarizer) PostPRSummary(ctx context.Context, pullNumber int, repository pullrequest.Repository) error {
	_, err := s.Post(ctx, repository.PullRequest(pullNumber))
	return err
}

// Post runs collect, generate and publish once, in that order. Repository API
// errors are returned unchanged in meaning; generation failures are not errors
// unless PostOnFailure is off.
func (s *Summarizer) Post(ctx context.Context, ref pullrequest.Ref) (Outcome, error) {
	outcome := Outcome{Ref: ref}
	if err := ref.Validate(); err != nil {
		return outcome, err
	}
	log := s.log.WithValues("pr", ref.String())

	diff, result, err := s.generate(ctx, ref)
	if err != nil {
		return outcome, err
	}
	outcome.Result = result

	if !result.Successful && !s.cfg.PostOnFailure {
		log.Info("skipping comment after failed generation", "category", result.FailureCategory)
		return outcome, fmt.Errorf("%w for %s (%s): %s", ErrSummaryFailed, ref, result.FailureCategory, result.FailureReason)
	}

	comment, err := s.publisher.Publish(ctx, ref, result.Text)
	if err != nil {
		return outcome, err
	}
	outcome.Comment = comment
	outcome.Published = true
	log.Info("summary posted", "successful", result.Successful, "comment_id", comment.ID)

	s.record(ctx, outcome, len(diff))
	return outcome, nil
}

// Preview collects and generates without posting anything.
func (s *Summarizer) Preview(ctx context.Context, ref pullrequest.Ref) (summary.Result, error) {
	if err := ref.Validate(); err != nil {
		return summary.Result{}, err
	}
	_, result, err := s.generate(ctx, ref)
	return result, err
}

func (s *Summarizer) generate(ctx context.Context, ref pullrequest.Ref) (string, summary.Result, error) {
	diff, err := s.collector.CollectDiff(ctx, ref)
	if err != nil {
		return "", summary.Result{}, err
	}
	return diff, s.generator.Generate(ctx, diff), nil
}

func (s *Summarizer) record(ctx context.Context, outcome Outcome, diffChars int) {
	if s.recorder == nil {
		return
	}
	run := &db.SummaryRun{
		Owner:         outcome.Ref.Owner,
		Repo:          outcome.Ref.Repo,
		PRNumber:      outcome.Ref.Number,
		HeadCommitSHA: outcome.Comment.HeadSHA,
		Model:         s.cfg.Summary.ModelName,
		DiffChars:     diffChars,
		Successful:    outcome.Result.Successful,
		Summary:       outcome.Result.Text,
	}
	if outcome.Comment.ID != 0 {
		id := outcome.Comment.ID
		run.CommentID = &id
	}
	if outcome.Comment.URL != "" {
		u := outcome.Comment.URL
		run.CommentURL = &u
	}
	if !outcome.Result.Successful {
		category := string(outcome.Result.FailureCategory)
		reason := outcome.Result.FailureReason
		run.FailureCategory = &category
		run.FailureReason = &reason
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		s.log.Error(err, "record summary run failed", "pr", outcome.Ref.String())
	}
}
