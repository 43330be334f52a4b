package catalog

import (
	"context"
	"fmt"
)

// Count is a label with the number of rows carrying it.
type Count struct {
	Label string
	Count int
}

// LengthStats summarizes text lengths in characters.
type LengthStats struct {
	Min  int
	Max  int
	Mean float64
}

// Summary aggregates a fixture set.
type Summary struct {
	Cases        int
	Sources      int
	Descriptions []Count
	Hosts        []Count
	AnswerChars  LengthStats
}

// Summary computes counts per description and per citation host along with
// answer length statistics.
func (c *Catalog) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM cases`).Scan(&summary.Cases); err != nil {
		return Summary{}, fmt.Errorf("catalog: count cases: %w", err)
	}
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM sources`).Scan(&summary.Sources); err != nil {
		return Summary{}, fmt.Errorf("catalog: count sources: %w", err)
	}

	descriptions, err := c.counts(ctx, `SELECT description, count(*) AS n FROM cases GROUP BY description ORDER BY n DESC, description`)
	if err != nil {
		return Summary{}, fmt.Errorf("catalog: descriptions: %w", err)
	}
	summary.Descriptions = descriptions

	hosts, err := c.counts(ctx, `SELECT host, count(*) AS n FROM sources GROUP BY host ORDER BY n DESC, host`)
	if err != nil {
		return Summary{}, fmt.Errorf("catalog: hosts: %w", err)
	}
	summary.Hosts = hosts

	row := c.db.QueryRowContext(ctx, `SELECT CAST(min(length(answer)) AS BIGINT), CAST(max(length(answer)) AS BIGINT), CAST(avg(length(answer)) AS DOUBLE) FROM cases`)
	if err := row.Scan(&summary.AnswerChars.Min, &summary.AnswerChars.Max, &summary.AnswerChars.Mean); err != nil {
		return Summary{}, fmt.Errorf("catalog: answer lengths: %w", err)
	}
	return summary, nil
}

func (c *Catalog) counts(ctx context.Context, query string) ([]Count, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Count
	for rows.Next() {
		var count Count
		if err := rows.Scan(&count.Label, &count.Count); err != nil {
			return nil, err
		}
		out = append(out, count)
	}
	return out, rows.Err()
}
