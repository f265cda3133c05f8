package summarizer

import (
	"context"
	"fmt"

	"github.com/roivaz/pr-summary/internal/db"
	"github.com/roivaz/pr-summary/internal/pullrequest"
	"github.com/roivaz/pr-summary/internal/summary"
)

// Runtime is a wired Summarizer plus the resources it owns. Ledger is nil
// when no Postgres URL is configured.
type Runtime struct {
	Summarizer *Summarizer
	Ledger     *db.Ledger

	database *db.Database
}

// Close releases the ledger connection pool, if any. It is safe to call on a
// Runtime without a ledger.
func (r *Runtime) Close() error {
	if r == nil || r.database == nil {
		return nil
	}
	return r.database.Close()
}

// Build wires the GitHub adapters, the completion model and, when a Postgres
// URL is configured, the run ledger. The ledger database must be reachable;
// Build fails instead of deferring the error to the first recorded run.
func Build(ctx context.Context, cfg Config) (*Runtime, error) {
	gh, err := pullrequest.NewGitHubClient(cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		return nil, err
	}

	sumCfg := cfg.Summary
	sumCfg.Logger = cfg.Logger
	model, err := summary.NewModel(sumCfg)
	if err != nil {
		return nil, err
	}
	generator, err := summary.NewGenerator(sumCfg, model)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{}
	var opts []Option
	if cfg.PostgresURL != "" {
		database, err := openLedger(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.database = database
		rt.Ledger = db.NewLedger(database)
		opts = append(opts, WithRecorder(rt.Ledger))
	}

	rt.Summarizer = New(cfg,
		pullrequest.NewCollector(gh, cfg.Logger),
		generator,
		pullrequest.NewPublisher(gh, cfg.Logger),
		opts...,
	)
	return rt, nil
}

func openLedger(ctx context.Context, cfg Config) (*db.Database, error) {
	database, err := db.NewDatabase(db.Config{DSN: cfg.PostgresURL, Debug: cfg.DBDebug})
	if err != nil {
		return nil, err
	}
	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("connect ledger: %w", err)
	}
	if err := database.Bootstrap(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("bootstrap ledger: %w", err)
	}
	return database, nil
}
