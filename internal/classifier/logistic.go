// Package classifier implements a one-vs-rest logistic regression ensemble
// over sparse TF-IDF features.
package classifier

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/kgrange/tagwise/internal/feature"
)

// Options configures the logistic regression trainer.
type Options struct {
	// C is the inverse L2 regularization strength.
	C float64
	// Epochs is the number of full passes over the training rows.
	Epochs int
	// LearningRate is the initial SGD step size; it decays as 1/(1+epoch).
	LearningRate float64
	// Seed drives row shuffling, so training is reproducible.
	Seed int64
}

// DefaultOptions returns the trainer settings used by the pipeline.
func DefaultOptions() Options {
	return Options{
		C:            10,
		Epochs:       50,
		LearningRate: 0.5,
		Seed:         13,
	}
}

// logistic is one binary sub-classifier of the ensemble.
type logistic struct {
	weights *mat.VecDense
	bias    float64
}

// trainLogistic fits a single L2-regularized binary classifier by SGD over
// log loss. Rows are visited in a seeded shuffle each epoch; the L2 decay is
// applied to the dense weight vector once per epoch.
func trainLogistic(x []feature.Vector, y []bool, numFeatures int, opts Options, rng *rand.Rand) *logistic {
	m := &logistic{weights: mat.NewVecDense(numFeatures, nil)}
	if len(x) == 0 {
		return m
	}

	order := rng.Perm(len(x))
	lambda := 1 / (opts.C * float64(len(x)))

	for epoch := 0; epoch < opts.Epochs; epoch++ {
		lr := opts.LearningRate / (1 + float64(epoch))

		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, idx := range order {
			row := x[idx]
			target := 0.0
			if y[idx] {
				target = 1.0
			}
			grad := sigmoid(m.decision(row)) - target

			for i, col := range row.Indices {
				m.weights.SetVec(col, m.weights.AtVec(col)-lr*grad*row.Values[i])
			}
			m.bias -= lr * grad
		}

		// Per-epoch weight decay stands in for the per-sample L2 term; it
		// keeps each row update proportional to the row's sparsity.
		m.weights.ScaleVec(1-lr*lambda*float64(len(x)), m.weights)
	}

	return m
}

// decision returns the raw margin for one sparse row.
func (m *logistic) decision(row feature.Vector) float64 {
	score := m.bias
	for i, col := range row.Indices {
		score += row.Values[i] * m.weights.AtVec(col)
	}
	return score
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
