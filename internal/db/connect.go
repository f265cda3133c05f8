package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	pgdriver "github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Config struct {
	DSN   string
	Debug bool
}

type Database struct {
	bun *bun.DB
}

func NewDatabase(cfg Config) (*Database, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN))
	sqldb := sql.OpenDB(connector)
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{bun: db}, nil
}

func (d *Database) Bun() *bun.DB {
	return d.bun
}

func (d *Database) Close() error {
	return d.bun.Close()
}

func (d *Database) Ping(ctx context.Context) error {
	return d.bun.PingContext(ctx)
}

// Bootstrap creates the ledger table and its lookup index when missing.
func (d *Database) Bootstrap(ctx context.Context) error {
	if _, err := d.bun.NewCreateTable().Model((*SummaryRun)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create summary_runs: %w", err)
	}
	_, err := d.bun.NewCreateIndex().Model((*SummaryRun)(nil)).
		Index("summary_runs_pr_idx").
		IfNotExists().
		Column("owner", "repo", "pr_number").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create summary_runs index: %w", err)
	}
	return nil
}
