// Package label turns (primary, secondary) category pairs into binary
// indicator rows over a frozen tag vocabulary.
//
// The vocabulary is built once from the full tag corpus and the binarizer is
// fit exactly once; every later call only transforms. Column order is the
// sorted vocabulary, so indicator matrices from different partitions always
// share column semantics.
package label

import (
	"sort"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/model"
)

// BuildVocabulary returns the sorted distinct label strings observed across
// tags. With keepEmpty set, an empty secondary category counts as a
// legitimate "no sub-category" class; otherwise empty labels are excluded.
func BuildVocabulary(tags []model.Tag, keepEmpty bool) []string {
	seen := make(map[string]struct{})
	for _, tag := range tags {
		for _, l := range tag.Labels(keepEmpty) {
			seen[l] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(seen))
	for l := range seen {
		vocab = append(vocab, l)
	}
	sort.Strings(vocab)
	return vocab
}

// Binarizer maps tag pairs onto indicator rows with pinned column order.
type Binarizer struct {
	index     map[string]int
	classes   []string
	keepEmpty bool
}

// NewBinarizer creates a binarizer over the given class vocabulary. The
// column order is exactly the order of classes.
func NewBinarizer(classes []string, keepEmpty bool) (*Binarizer, error) {
	if len(classes) == 0 {
		return nil, common.ErrNoLabels
	}

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &Binarizer{
		index:     index,
		classes:   classes,
		keepEmpty: keepEmpty,
	}, nil
}

// Classes returns the vocabulary in column order.
func (b *Binarizer) Classes() []string {
	return b.classes
}

// Transform produces one indicator row per tag. Labels outside the
// vocabulary are ignored, so a row has exactly one set bit per distinct
// in-vocabulary label.
func (b *Binarizer) Transform(tags []model.Tag) [][]bool {
	rows := make([][]bool, len(tags))
	for i, tag := range tags {
		row := make([]bool, len(b.classes))
		for _, l := range tag.Labels(b.keepEmpty) {
			if col, ok := b.index[l]; ok {
				row[col] = true
			}
		}
		rows[i] = row
	}
	return rows
}

// InverseTransform recovers the label strings for each indicator row,
// in column (alphabetical) order.
func (b *Binarizer) InverseTransform(rows [][]bool) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		var labels []string
		for col, set := range row {
			if set {
				labels = append(labels, b.classes[col])
			}
		}
		out[i] = labels
	}
	return out
}
