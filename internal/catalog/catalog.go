// Package catalog exposes a fixture set as a read-only in-memory DuckDB
// database for ad-hoc summaries.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"

	"gaia/internal/fixture"
)

//go:embed schema.sql
var schemaDDL string

// Catalog is an in-memory DuckDB view of a fixture set.
type Catalog struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open creates an in-memory database and loads every case and source.
func Open(ctx context.Context, set *fixture.Set, logger *zap.Logger) (*Catalog, error) {
	if set == nil {
		return nil, errors.New("catalog: fixture set is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("catalog: open duckdb: %w", err)
	}
	// One connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("catalog: ping duckdb: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("catalog: apply schema: %w", err)
	}
	c := &Catalog{db: db, logger: logger}
	if err := c.load(ctx, set); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("catalog loaded", zap.Int("cases", set.Len()))
	return c, nil
}

// Close releases the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) load(ctx context.Context, set *fixture.Set) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertCase, err := tx.PrepareContext(ctx, `INSERT INTO cases (id, position, question, description, answer, reasoning) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("catalog: prepare cases: %w", err)
	}
	defer insertCase.Close()
	insertSource, err := tx.PrepareContext(ctx, `INSERT INTO sources (case_id, position, url, host) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("catalog: prepare sources: %w", err)
	}
	defer insertSource.Close()

	for position, tc := range set.All() {
		response := tc.ExpectedResponse
		if _, err := insertCase.ExecContext(ctx, tc.ID, position, tc.Question, tc.Description, response.Answer, response.Reasoning); err != nil {
			return fmt.Errorf("catalog: insert case %d: %w", tc.ID, err)
		}
		for sourcePosition, source := range response.Sources {
			if _, err := insertSource.ExecContext(ctx, tc.ID, sourcePosition, source, sourceHost(source)); err != nil {
				return fmt.Errorf("catalog: insert source %d/%d: %w", tc.ID, sourcePosition, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit load: %w", err)
	}
	return nil
}

// sourceHost returns the lowercased host without a leading "www.".
func sourceHost(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}
