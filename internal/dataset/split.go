package dataset

import (
	"math/rand"

	"github.com/kgrange/tagwise/internal/model"
)

// Split shuffles records with the given source of randomness and cuts them
// into train/validation/test partitions. trainFraction of the rows become
// the training set; the remainder is halved between validation and test, so
// the default 0.70 yields a 70/15/15 split.
func Split(records []model.Record, rng *rand.Rand, trainFraction float64) model.Split {
	shuffled := make([]model.Record, len(records))
	copy(shuffled, records)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	trainEnd := int(float64(len(shuffled)) * trainFraction)
	holdout := shuffled[trainEnd:]
	valEnd := trainEnd + len(holdout)/2

	return model.Split{
		Train:      shuffled[:trainEnd],
		Validation: shuffled[trainEnd:valEnd],
		Test:       shuffled[valEnd:],
	}
}
