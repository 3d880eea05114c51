// Package main contains the tagwise CLI commands.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/config"
	"github.com/kgrange/tagwise/internal/ingest"
	"github.com/kgrange/tagwise/internal/storage"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load and assemble the complaint and product files",
		Long: `Load the complaints and products CSV files, join them on product id,
drop duplicate rows, and store the assembled dataset locally so later runs
skip CSV parsing.

Examples:
  tagwise ingest --complaints complaints.csv --products products.csv`,
		RunE: runIngest,
	}

	cmd.Flags().String("complaints", "", "path to the complaints CSV file")
	cmd.Flags().String("products", "", "path to the products CSV file")

	_ = viper.BindPFlag("ingest.complaints", cmd.Flags().Lookup("complaints"))
	_ = viper.BindPFlag("ingest.products", cmd.Flags().Lookup("products"))

	return cmd
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	complaintsPath := viper.GetString("ingest.complaints")
	productsPath := viper.GetString("ingest.products")
	if complaintsPath == "" || productsPath == "" {
		return common.NewUserError("both --complaints and --products are required", common.ErrMissingConfig)
	}

	complaints, err := ingest.ReadComplaints(config.ExpandPath(complaintsPath))
	if err != nil {
		return fmt.Errorf("failed to load complaints: %w", err)
	}
	products, err := ingest.ReadProducts(config.ExpandPath(productsPath))
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	records := ingest.Assemble(complaints, products)

	db, err := storage.NewSQLiteStorage(config.ExpandPath(viper.GetString("database.path")))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.ReplaceRecords(ctx, records); err != nil {
		return fmt.Errorf("failed to store records: %w", err)
	}

	slog.Info("Ingest complete", "records", len(records))
	return nil
}
