package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kgrange/tagwise/internal/cli"
	"github.com/kgrange/tagwise/internal/config"
	"github.com/kgrange/tagwise/internal/storage"
)

func runsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded training runs",
		RunE:  runRuns,
	}
}

func runRuns(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := storage.NewSQLiteStorage(config.ExpandPath(viper.GetString("database.path")))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No runs recorded yet."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Training runs"))
	for _, run := range runs {
		fmt.Printf("%s  seed %d  %d rows  %d labels  acc %.4f  f1 %.4f  ap %.4f  (%s)\n",
			cli.BoldStyle.Render(fmt.Sprintf("#%d", run.ID)),
			run.Seed, run.Rows, run.Labels,
			run.Accuracy, run.WeightedF1, run.AveragePrecision,
			run.FinishedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
