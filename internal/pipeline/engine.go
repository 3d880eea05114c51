// Package pipeline orchestrates the five training stages: rebalancing,
// normalization, partitioning, feature and label construction, and training
// with evaluation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/kgrange/tagwise/internal/classifier"
	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/config"
	"github.com/kgrange/tagwise/internal/dataset"
	"github.com/kgrange/tagwise/internal/eval"
	"github.com/kgrange/tagwise/internal/feature"
	"github.com/kgrange/tagwise/internal/label"
	"github.com/kgrange/tagwise/internal/model"
	"github.com/kgrange/tagwise/internal/textnorm"
)

// Engine runs the full training pipeline over an assembled dataset.
type Engine struct {
	normalizer *textnorm.Normalizer
	cfg        config.Pipeline
}

// Sample is one validation prediction kept for manual inspection.
type Sample struct {
	Text      string
	Want      []string
	Predicted []string
}

// Result is everything a run produces: the evaluation report, inspection
// samples, and the shape of the data that went in.
type Result struct {
	StartedAt      time.Time
	FinishedAt     time.Time
	Report         *eval.Report
	Samples        []Sample
	Rebalance      dataset.RebalanceStats
	Rows           int
	TrainRows      int
	ValidationRows int
	TestRows       int
	Features       int
	Labels         int
	Seed           int64
}

// New creates a pipeline engine with the given configuration.
func New(cfg config.Pipeline) (*Engine, error) {
	normalizer, err := textnorm.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create normalizer: %w", err)
	}
	return &Engine{normalizer: normalizer, cfg: cfg}, nil
}

// Run executes every stage in order. All randomness derives from the
// configured seed, so two runs over the same dataset produce the same
// partitions, the same vocabulary, and the same model.
func (e *Engine) Run(ctx context.Context, records []model.Record) (*Result, error) {
	if len(records) == 0 {
		return nil, common.ErrEmptyDataset
	}

	result := &Result{StartedAt: time.Now(), Seed: e.cfg.Seed}
	rng := rand.New(rand.NewSource(e.cfg.Seed))

	// Stage 1: class rebalancing.
	rebalanced, stats := dataset.Rebalance(records, rng, e.cfg.MinGroup, e.cfg.MaxPerGroup)
	if len(rebalanced) == 0 {
		return nil, fmt.Errorf("%w: no category reached %d rows", common.ErrEmptyDataset, e.cfg.MinGroup)
	}
	result.Rebalance = stats
	result.Rows = len(rebalanced)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: text normalization, row by row.
	bar := progressbar.Default(int64(len(rebalanced)), "cleaning narratives")
	for i := range rebalanced {
		rebalanced[i].Text = e.normalizer.Clean(rebalanced[i].Text)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: label vocabulary over the full rebalanced corpus, built and
	// frozen before any partition is binarized.
	vocab := label.BuildVocabulary(tagsOf(rebalanced), e.cfg.KeepEmptySub)
	binarizer, err := label.NewBinarizer(vocab, e.cfg.KeepEmptySub)
	if err != nil {
		return nil, err
	}
	result.Labels = len(vocab)

	// Stage 4: partitioning and feature extraction. The vectorizer sees
	// training text only; validation and test ride the frozen vocabulary.
	split := dataset.Split(rebalanced, rng, e.cfg.TrainFraction)
	result.TrainRows = len(split.Train)
	result.ValidationRows = len(split.Validation)
	result.TestRows = len(split.Test)
	slog.Info("Partitioned dataset",
		"train", len(split.Train),
		"validation", len(split.Validation),
		"test", len(split.Test))

	vectorizer := feature.NewVectorizer(feature.Options{
		MinDF:       e.cfg.MinDF,
		MaxDFRatio:  e.cfg.MaxDFRatio,
		MaxFeatures: e.cfg.MaxFeatures,
		NgramMax:    e.cfg.NgramMax,
		Sublinear:   e.cfg.SublinearTF,
	})
	xTrain, err := vectorizer.FitTransform(textsOf(split.Train))
	if err != nil {
		return nil, fmt.Errorf("failed to fit vectorizer: %w", err)
	}
	xVal, err := vectorizer.Transform(textsOf(split.Validation))
	if err != nil {
		return nil, fmt.Errorf("failed to transform validation text: %w", err)
	}
	if _, err := vectorizer.Transform(textsOf(split.Test)); err != nil {
		return nil, fmt.Errorf("failed to transform test text: %w", err)
	}
	result.Features = len(vectorizer.Vocabulary())
	slog.Info("Fitted vectorizer", "features", result.Features)

	yTrain := binarizer.Transform(tagsOf(split.Train))
	yVal := binarizer.Transform(tagsOf(split.Validation))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: training and evaluation.
	ensemble := classifier.NewOneVsRest(vocab, classifier.Options{
		C:            e.cfg.C,
		Epochs:       e.cfg.Epochs,
		LearningRate: e.cfg.LearningRate,
		Seed:         e.cfg.Seed,
	})
	bar = progressbar.Default(int64(len(vocab)), "training classifiers")
	if err := ensemble.Fit(xTrain, yTrain, result.Features, func() { _ = bar.Add(1) }); err != nil {
		return nil, fmt.Errorf("failed to train ensemble: %w", err)
	}
	_ = bar.Finish()

	yPred, err := ensemble.Predict(xVal)
	if err != nil {
		return nil, err
	}
	scores, err := ensemble.DecisionFunction(xVal)
	if err != nil {
		return nil, err
	}

	report, err := eval.Evaluate(yVal, yPred, scores, vocab)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate: %w", err)
	}
	result.Report = report

	result.Samples = collectSamples(split.Validation, binarizer, yVal, yPred, e.cfg.SampleCount)
	result.FinishedAt = time.Now()

	slog.Info("Pipeline finished",
		"accuracy", report.Accuracy,
		"weighted_f1", report.WeightedF1,
		"average_precision", report.AveragePrecision,
		"duration", result.FinishedAt.Sub(result.StartedAt))

	return result, nil
}

// Run converts a pipeline result into a persistable run record.
func (r *Result) Run() model.Run {
	return model.Run{
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
		Seed:             r.Seed,
		Rows:             r.Rows,
		Labels:           r.Labels,
		Features:         r.Features,
		Accuracy:         r.Report.Accuracy,
		WeightedF1:       r.Report.WeightedF1,
		AveragePrecision: r.Report.AveragePrecision,
	}
}

func collectSamples(records []model.Record, binarizer *label.Binarizer, yTrue, yPred [][]bool, count int) []Sample {
	if count > len(records) {
		count = len(records)
	}
	want := binarizer.InverseTransform(yTrue[:count])
	got := binarizer.InverseTransform(yPred[:count])

	samples := make([]Sample, count)
	for i := 0; i < count; i++ {
		samples[i] = Sample{
			Text:      records[i].Text,
			Want:      want[i],
			Predicted: got[i],
		}
	}
	return samples
}

func textsOf(records []model.Record) []string {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}
	return texts
}

func tagsOf(records []model.Record) []model.Tag {
	tags := make([]model.Tag, len(records))
	for i, r := range records {
		tags[i] = r.Tag()
	}
	return tags
}
