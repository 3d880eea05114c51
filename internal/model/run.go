package model

import "time"

// Run records one completed training run and its headline metrics.
type Run struct {
	StartedAt        time.Time
	FinishedAt       time.Time
	ID               int64
	Seed             int64
	Rows             int
	Labels           int
	Features         int
	Accuracy         float64
	WeightedF1       float64
	AveragePrecision float64
}
