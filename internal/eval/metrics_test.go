package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgrange/tagwise/internal/common"
)

func TestEvaluate_PerfectPredictions(t *testing.T) {
	yTrue := [][]bool{
		{true, false},
		{false, true},
		{true, true},
	}
	scores := [][]float64{
		{1, -1},
		{-1, 1},
		{1, 1},
	}

	report, err := Evaluate(yTrue, yTrue, scores, []string{"A", "B"})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, report.Accuracy, 1e-12)
	assert.InDelta(t, 1.0, report.WeightedF1, 1e-12)
	assert.InDelta(t, 1.0, report.AveragePrecision, 1e-12)
	assert.Empty(t, report.Undefined)
	assert.Equal(t, 3, report.Rows)
}

func TestEvaluate_KnownConfusion(t *testing.T) {
	// Label A: tp=1, fn=1; label B: tp=1, fp=1.
	yTrue := [][]bool{
		{true, false},
		{true, true},
		{false, false},
	}
	yPred := [][]bool{
		{true, false},
		{false, true},
		{false, true},
	}
	scores := [][]float64{
		{2, -1},
		{-1, 2},
		{-2, 1},
	}

	report, err := Evaluate(yTrue, yPred, scores, []string{"A", "B"})
	require.NoError(t, err)

	// Only the first row matches on every label.
	assert.InDelta(t, 1.0/3.0, report.Accuracy, 1e-12)

	require.Len(t, report.PerLabel, 2)
	a, b := report.PerLabel[0], report.PerLabel[1]

	// A: precision 1, recall 1/2, F1 2/3, support 2.
	assert.InDelta(t, 1.0, a.Precision, 1e-12)
	assert.InDelta(t, 0.5, a.Recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, a.F1, 1e-12)
	assert.Equal(t, 2, a.Support)

	// B: precision 1/2, recall 1, F1 2/3, support 1.
	assert.InDelta(t, 0.5, b.Precision, 1e-12)
	assert.InDelta(t, 1.0, b.Recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, b.F1, 1e-12)
	assert.Equal(t, 1, b.Support)

	// Weighted F1: (2/3*2 + 2/3*1) / 3.
	assert.InDelta(t, 2.0/3.0, report.WeightedF1, 1e-12)
}

func TestEvaluate_AveragePrecisionRanking(t *testing.T) {
	// One label, two positives: ranked 1st and 3rd by score.
	yTrue := [][]bool{{true}, {false}, {true}}
	yPred := [][]bool{{true}, {false}, {false}}
	scores := [][]float64{{3}, {2}, {1}}

	report, err := Evaluate(yTrue, yPred, scores, []string{"A"})
	require.NoError(t, err)

	// AP = (1/1 + 2/3) / 2.
	assert.InDelta(t, (1.0+2.0/3.0)/2, report.AveragePrecision, 1e-12)
}

func TestEvaluate_UndefinedLabel(t *testing.T) {
	// Label B has no positive examples; it must be named, not averaged.
	yTrue := [][]bool{
		{true, false},
		{false, false},
	}
	yPred := [][]bool{
		{true, false},
		{false, true},
	}
	scores := [][]float64{
		{1, -1},
		{-1, 1},
	}

	report, err := Evaluate(yTrue, yPred, scores, []string{"A", "B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, report.Undefined)
	assert.False(t, report.PerLabel[1].Defined)
	assert.InDelta(t, 1.0, report.WeightedF1, 1e-12, "undefined labels must not drag the aggregate")
	assert.InDelta(t, 1.0, report.AveragePrecision, 1e-12)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := Evaluate(nil, nil, nil, nil)
	assert.ErrorIs(t, err, common.ErrEmptyDataset)

	_, err = Evaluate([][]bool{{true}}, nil, nil, []string{"A"})
	assert.ErrorIs(t, err, common.ErrVocabularyMismatch)
}
