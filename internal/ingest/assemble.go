package ingest

import (
	"log/slog"

	"github.com/kgrange/tagwise/internal/model"
)

// Assemble left-joins complaints with products on product id and drops exact
// duplicate rows. Every complaint survives; rows with no matching product
// keep empty categories and are counted so the gap is visible in the logs
// rather than silently absorbed.
func Assemble(complaints []model.Complaint, products []model.Product) []model.Record {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	seen := make(map[string]struct{}, len(complaints))
	records := make([]model.Record, 0, len(complaints))
	unmatched := 0
	for _, c := range complaints {
		product, ok := byID[c.ProductID]
		if !ok {
			unmatched++
		}

		record := model.Record{
			Text:      c.Narrative,
			ProductID: c.ProductID,
			Primary:   product.Primary,
			Secondary: product.Secondary,
		}

		hash := record.Hash()
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		records = append(records, record)
	}

	if unmatched > 0 {
		slog.Warn("Complaints without a matching product", "count", unmatched)
	}
	slog.Info("Assembled dataset",
		"complaints", len(complaints),
		"products", len(products),
		"records", len(records),
		"duplicates_dropped", len(complaints)-len(records))

	return records
}
