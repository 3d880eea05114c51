// Package dataset rebalances and partitions the assembled rows.
package dataset

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/kgrange/tagwise/internal/model"
)

// RebalanceStats counts how each primary-category group was handled.
type RebalanceStats struct {
	Sampled int
	Kept    int
	Dropped int
}

// Rebalance limits class imbalance by primary category. Groups larger than
// maxPerGroup are sampled down to exactly maxPerGroup rows; groups in
// [minGroup, maxPerGroup] are kept whole; groups under minGroup are dropped
// outright. The decision is an exhaustive three-way switch, so every group
// lands in exactly one band.
//
// Categories dropped here are absent from every downstream stage, including
// the tag vocabulary, and become unlearnable. Kept groups are concatenated
// once, in sorted category order, so the output is deterministic for a given
// seed.
func Rebalance(records []model.Record, rng *rand.Rand, minGroup, maxPerGroup int) ([]model.Record, RebalanceStats) {
	groups := make(map[string][]model.Record)
	for _, r := range records {
		groups[r.Primary] = append(groups[r.Primary], r)
	}

	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var stats RebalanceStats
	var out []model.Record
	for _, category := range categories {
		group := groups[category]
		switch {
		case len(group) > maxPerGroup:
			out = append(out, sample(group, maxPerGroup, rng)...)
			stats.Sampled++
		case len(group) >= minGroup:
			out = append(out, group...)
			stats.Kept++
		default:
			stats.Dropped++
			slog.Debug("Dropping undersized category", "category", category, "rows", len(group))
		}
	}

	slog.Info("Rebalanced dataset",
		"rows_in", len(records),
		"rows_out", len(out),
		"sampled", stats.Sampled,
		"kept", stats.Kept,
		"dropped", stats.Dropped)

	return out, stats
}

// sample draws n rows uniformly without replacement via a partial
// Fisher-Yates shuffle of a copy.
func sample(group []model.Record, n int, rng *rand.Rand) []model.Record {
	pool := make([]model.Record, len(group))
	copy(pool, group)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
