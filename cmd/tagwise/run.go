package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/config"
	"github.com/kgrange/tagwise/internal/ingest"
	"github.com/kgrange/tagwise/internal/model"
	"github.com/kgrange/tagwise/internal/pipeline"
	"github.com/kgrange/tagwise/internal/storage"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Train and evaluate the tagger",
		Long: `Run the full pipeline: rebalance classes, clean narratives, split
70/15/15, build TF-IDF features and the tag vocabulary, train one logistic
regression per tag, and report accuracy, weighted F1, and average precision
on the validation partition.

Reads the ingested dataset by default; pass --complaints and --products to
run directly from CSV files instead.

Examples:
  tagwise run
  tagwise run --seed 7
  tagwise run --complaints complaints.csv --products products.csv`,
		RunE: runPipeline,
	}

	cmd.Flags().String("complaints", "", "complaints CSV (skip the ingested dataset)")
	cmd.Flags().String("products", "", "products CSV (skip the ingested dataset)")
	cmd.Flags().Int64("seed", 13, "seed for every random draw in the pipeline")
	cmd.Flags().Int("max-features", 10000, "TF-IDF vocabulary cap")
	cmd.Flags().Bool("keep-empty-sub", false, "treat an empty sub-product as its own label class")
	cmd.Flags().Int("samples", 5, "validation predictions to print for inspection")

	_ = viper.BindPFlag("run.complaints", cmd.Flags().Lookup("complaints"))
	_ = viper.BindPFlag("run.products", cmd.Flags().Lookup("products"))
	_ = viper.BindPFlag("pipeline.seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("tfidf.max_features", cmd.Flags().Lookup("max-features"))
	_ = viper.BindPFlag("labels.keep_empty_sub", cmd.Flags().Lookup("keep-empty-sub"))
	_ = viper.BindPFlag("report.samples", cmd.Flags().Lookup("samples"))

	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadPipeline()
	if err != nil {
		return err
	}

	db, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	records, err := loadRecords(cmd, db)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return common.NewUserError("no dataset available - run 'tagwise ingest' first", common.ErrEmptyDataset)
	}

	engine, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	result, err := engine.Run(ctx, records)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Print(pipeline.RenderReport(result))

	id, err := db.SaveRun(ctx, result.Run())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	slog.Info("Recorded run", "id", id)

	return nil
}

// loadRecords assembles from CSV files when both are given, and falls back
// to the ingested dataset otherwise.
func loadRecords(cmd *cobra.Command, db *storage.SQLiteStorage) ([]model.Record, error) {
	complaintsPath := viper.GetString("run.complaints")
	productsPath := viper.GetString("run.products")

	if complaintsPath != "" || productsPath != "" {
		if complaintsPath == "" || productsPath == "" {
			return nil, common.NewUserError("--complaints and --products must be given together", common.ErrMissingConfig)
		}
		complaints, err := ingest.ReadComplaints(config.ExpandPath(complaintsPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load complaints: %w", err)
		}
		products, err := ingest.ReadProducts(config.ExpandPath(productsPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}
		return ingest.Assemble(complaints, products), nil
	}

	return db.GetRecords(cmd.Context())
}
