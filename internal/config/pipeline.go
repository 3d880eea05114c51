package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kgrange/tagwise/internal/common"
)

// Pipeline holds every tunable of the training pipeline. All values come
// from viper, so flags, config file, and TAGWISE_* environment variables all
// feed the same keys.
type Pipeline struct {
	DatabasePath  string
	Seed          int64
	MinGroup      int
	MaxPerGroup   int
	TrainFraction float64

	// TF-IDF vectorizer settings.
	MinDF       int
	MaxDFRatio  float64
	MaxFeatures int
	NgramMax    int
	SublinearTF bool

	// Label vocabulary settings.
	KeepEmptySub bool

	// Trainer settings.
	C            float64
	Epochs       int
	LearningRate float64

	// SampleCount is how many validation predictions to print.
	SampleCount int
}

// SetDefaults registers the default value of every pipeline key.
func SetDefaults() {
	viper.SetDefault("database.path", "~/.local/share/tagwise/tagwise.db")
	viper.SetDefault("pipeline.seed", 13)
	viper.SetDefault("pipeline.min_group", 5000)
	viper.SetDefault("pipeline.max_per_group", 10000)
	viper.SetDefault("pipeline.train_fraction", 0.70)
	viper.SetDefault("tfidf.min_df", 5)
	viper.SetDefault("tfidf.max_df_ratio", 0.50)
	viper.SetDefault("tfidf.max_features", 10000)
	viper.SetDefault("tfidf.ngram_max", 2)
	viper.SetDefault("tfidf.sublinear", true)
	viper.SetDefault("labels.keep_empty_sub", false)
	viper.SetDefault("training.c", 10.0)
	viper.SetDefault("training.epochs", 50)
	viper.SetDefault("training.learning_rate", 0.5)
	viper.SetDefault("report.samples", 5)
}

// LoadPipeline reads the pipeline configuration out of viper and validates
// it.
func LoadPipeline() (Pipeline, error) {
	p := Pipeline{
		DatabasePath:  ExpandPath(viper.GetString("database.path")),
		Seed:          viper.GetInt64("pipeline.seed"),
		MinGroup:      viper.GetInt("pipeline.min_group"),
		MaxPerGroup:   viper.GetInt("pipeline.max_per_group"),
		TrainFraction: viper.GetFloat64("pipeline.train_fraction"),
		MinDF:         viper.GetInt("tfidf.min_df"),
		MaxDFRatio:    viper.GetFloat64("tfidf.max_df_ratio"),
		MaxFeatures:   viper.GetInt("tfidf.max_features"),
		NgramMax:      viper.GetInt("tfidf.ngram_max"),
		SublinearTF:   viper.GetBool("tfidf.sublinear"),
		KeepEmptySub:  viper.GetBool("labels.keep_empty_sub"),
		C:             viper.GetFloat64("training.c"),
		Epochs:        viper.GetInt("training.epochs"),
		LearningRate:  viper.GetFloat64("training.learning_rate"),
		SampleCount:   viper.GetInt("report.samples"),
	}

	if p.MinGroup > p.MaxPerGroup {
		return Pipeline{}, fmt.Errorf("%w: pipeline.min_group %d exceeds pipeline.max_per_group %d",
			common.ErrInvalidConfig, p.MinGroup, p.MaxPerGroup)
	}
	if p.TrainFraction <= 0 || p.TrainFraction >= 1 {
		return Pipeline{}, fmt.Errorf("%w: pipeline.train_fraction must be in (0, 1), got %v",
			common.ErrInvalidConfig, p.TrainFraction)
	}
	if p.C <= 0 {
		return Pipeline{}, fmt.Errorf("%w: training.c must be positive, got %v",
			common.ErrInvalidConfig, p.C)
	}
	if p.SampleCount < 0 {
		return Pipeline{}, fmt.Errorf("%w: report.samples must not be negative, got %d",
			common.ErrInvalidConfig, p.SampleCount)
	}

	return p, nil
}
