package db

import (
	"context"
	"fmt"
)

// Ledger stores one row per summary posted to a pull request.
type Ledger struct {
	db *Database
}

func NewLedger(database *Database) *Ledger {
	return &Ledger{db: database}
}

func (l *Ledger) Record(ctx context.Context, run *SummaryRun) error {
	if _, err := l.db.Bun().NewInsert().Model(run).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("insert summary run: %w", err)
	}
	return nil
}

// RunsForPR returns the most recent runs for a pull request, newest first.
func (l *Ledger) RunsForPR(ctx context.Context, owner, repo string, number, limit int) ([]SummaryRun, error) {
	if limit <= 0 {
		limit = 10
	}
	var runs []SummaryRun
	err := l.db.Bun().NewSelect().Model(&runs).
		Where("owner = ?", owner).
		Where("repo = ?", repo).
		Where("pr_number = ?", number).
		OrderExpr("created_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select summary runs: %w", err)
	}
	return runs, nil
}
