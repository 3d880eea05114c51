// Package ingest loads the two source CSV files and assembles them into the
// unified rows the pipeline consumes.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/model"
)

// Column names accepted in the source files. The schema is header-driven so
// exports with extra columns keep working.
var (
	narrativeColumns = []string{"complaint_what_happened", "narrative", "consumer_complaint_narrative"}
	productIDColumns = []string{"product_id", "product id"}
	primaryColumns   = []string{"product", "main_product", "category"}
	secondaryColumns = []string{"sub_product", "sub product", "subproduct"}
)

// ReadComplaints parses the complaints file: one row per complaint with a
// narrative and a product id column.
func ReadComplaints(path string) ([]model.Complaint, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}

	textIdx, err := findColumn(header, narrativeColumns)
	if err != nil {
		return nil, fmt.Errorf("complaints file %s: %w", path, err)
	}
	idIdx, err := findColumn(header, productIDColumns)
	if err != nil {
		return nil, fmt.Errorf("complaints file %s: %w", path, err)
	}

	complaints := make([]model.Complaint, 0, len(rows))
	for _, row := range rows {
		complaints = append(complaints, model.Complaint{
			Narrative: field(row, textIdx),
			ProductID: field(row, idIdx),
		})
	}
	return complaints, nil
}

// ReadProducts parses the products file: one row per product with its id and
// category pair.
func ReadProducts(path string) ([]model.Product, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}

	idIdx, err := findColumn(header, productIDColumns)
	if err != nil {
		return nil, fmt.Errorf("products file %s: %w", path, err)
	}
	primaryIdx, err := findColumn(header, primaryColumns)
	if err != nil {
		return nil, fmt.Errorf("products file %s: %w", path, err)
	}
	secondaryIdx, err := findColumn(header, secondaryColumns)
	if err != nil {
		return nil, fmt.Errorf("products file %s: %w", path, err)
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, model.Product{
			ID:        field(row, idIdx),
			Primary:   field(row, primaryIdx),
			Secondary: field(row, secondaryIdx),
		})
	}
	return products, nil
}

// readAll reads a CSV file into rows plus its header.
func readAll(path string) ([][]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%s: %w", path, common.ErrEmptyDataset)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	var rows [][]string
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s line %d: %w", path, line, err)
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

// findColumn returns the index of the first accepted column name present in
// the header, case-insensitively.
func findColumn(header []string, accepted []string) (int, error) {
	for _, want := range accepted {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), want) {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %s", common.ErrMissingColumn, accepted[0])
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
