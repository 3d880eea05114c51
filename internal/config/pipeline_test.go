package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgrange/tagwise/internal/common"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestLoadPipeline_Defaults(t *testing.T) {
	resetViper(t)

	p, err := LoadPipeline()
	require.NoError(t, err)

	assert.Equal(t, int64(13), p.Seed)
	assert.Equal(t, 5000, p.MinGroup)
	assert.Equal(t, 10000, p.MaxPerGroup)
	assert.InDelta(t, 0.70, p.TrainFraction, 1e-12)
	assert.Equal(t, 10000, p.MaxFeatures)
	assert.Equal(t, 5, p.MinDF)
	assert.Equal(t, 2, p.NgramMax)
	assert.True(t, p.SublinearTF)
	assert.False(t, p.KeepEmptySub)
	assert.InDelta(t, 10.0, p.C, 1e-12)
}

func TestLoadPipeline_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "min group above max", key: "pipeline.min_group", value: 20000},
		{name: "train fraction too high", key: "pipeline.train_fraction", value: 1.0},
		{name: "train fraction zero", key: "pipeline.train_fraction", value: 0.0},
		{name: "non-positive C", key: "training.c", value: -1.0},
		{name: "negative sample count", key: "report.samples", value: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)

			_, err := LoadPipeline()
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}
