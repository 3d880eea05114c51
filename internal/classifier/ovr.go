package classifier

import (
	"math/rand"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/feature"
)

// OneVsRest decomposes multi-label classification into one independent
// binary logistic regression per label column.
type OneVsRest struct {
	models  []*logistic
	classes []string
	opts    Options
	fitted  bool
}

// NewOneVsRest creates an ensemble over the given label classes. The class
// order must match the binarizer's column order.
func NewOneVsRest(classes []string, opts Options) *OneVsRest {
	return &OneVsRest{classes: classes, opts: opts}
}

// Classes returns the label classes in column order.
func (o *OneVsRest) Classes() []string {
	return o.classes
}

// Fit trains one sub-classifier per label column. y rows must have exactly
// one entry per class. progress, if non-nil, is called after each label.
func (o *OneVsRest) Fit(x []feature.Vector, y [][]bool, numFeatures int, progress func()) error {
	if o.fitted {
		return common.ErrAlreadyFitted
	}
	if len(x) == 0 {
		return common.ErrEmptyDataset
	}
	if len(x) != len(y) {
		return common.ErrVocabularyMismatch
	}

	o.models = make([]*logistic, len(o.classes))
	column := make([]bool, len(x))
	for j := range o.classes {
		for i := range y {
			column[i] = y[i][j]
		}
		// One deterministic stream per label, so adding a label never
		// perturbs the others.
		rng := rand.New(rand.NewSource(o.opts.Seed + int64(j)))
		o.models[j] = trainLogistic(x, column, numFeatures, o.opts, rng)
		if progress != nil {
			progress()
		}
	}
	o.fitted = true

	return nil
}

// Predict returns hard indicator rows: one bit per label, set when the
// sub-classifier's margin is positive.
func (o *OneVsRest) Predict(x []feature.Vector) ([][]bool, error) {
	if !o.fitted {
		return nil, common.ErrNotFitted
	}

	out := make([][]bool, len(x))
	for i, row := range x {
		bits := make([]bool, len(o.models))
		for j, m := range o.models {
			bits[j] = m.decision(row) > 0
		}
		out[i] = bits
	}
	return out, nil
}

// DecisionFunction returns the raw per-label margins for ranking metrics.
func (o *OneVsRest) DecisionFunction(x []feature.Vector) ([][]float64, error) {
	if !o.fitted {
		return nil, common.ErrNotFitted
	}

	out := make([][]float64, len(x))
	for i, row := range x {
		scores := make([]float64, len(o.models))
		for j, m := range o.models {
			scores[j] = m.decision(row)
		}
		out[i] = scores
	}
	return out, nil
}
