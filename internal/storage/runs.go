package storage

import (
	"context"
	"fmt"

	"github.com/kgrange/tagwise/internal/model"
)

// SaveRun records a completed training run and returns its id.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run model.Run) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (started_at, finished_at, seed, rows, labels, features,
			accuracy, weighted_f1, average_precision)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt, run.FinishedAt, run.Seed, run.Rows, run.Labels,
		run.Features, run.Accuracy, run.WeightedF1, run.AveragePrecision)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// ListRuns returns recorded runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context) ([]model.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, seed, rows, labels, features,
			accuracy, weighted_f1, average_precision
		FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.Run
	for rows.Next() {
		var r model.Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Seed, &r.Rows,
			&r.Labels, &r.Features, &r.Accuracy, &r.WeightedF1, &r.AveragePrecision); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}
