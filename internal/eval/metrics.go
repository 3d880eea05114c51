// Package eval computes multi-label evaluation metrics.
//
// Labels with no positive examples in the reference partition have no
// defined F1 or average precision. Those labels are reported by name and
// excluded from the aggregates instead of poisoning them with NaN.
package eval

import (
	"sort"

	"github.com/kgrange/tagwise/internal/common"
)

// LabelMetrics holds the per-label scores backing the aggregates.
type LabelMetrics struct {
	Label            string
	Precision        float64
	Recall           float64
	F1               float64
	AveragePrecision float64
	Support          int
	Defined          bool
}

// Report is the evaluation summary for one partition.
type Report struct {
	// Accuracy is exact-match accuracy: every label bit of a row must match.
	Accuracy float64
	// WeightedF1 averages per-label F1 weighted by support, over defined
	// labels only.
	WeightedF1 float64
	// AveragePrecision is the macro average of per-label AP over defined
	// labels only.
	AveragePrecision float64
	// PerLabel lists every label's scores in column order.
	PerLabel []LabelMetrics
	// Undefined names the labels with no positive examples.
	Undefined []string
	// Rows is the number of evaluated rows.
	Rows int
}

// Evaluate scores predictions against reference indicator rows. scores are
// the raw per-label margins used for average precision; classes names the
// columns.
func Evaluate(yTrue, yPred [][]bool, scores [][]float64, classes []string) (*Report, error) {
	if len(yTrue) == 0 {
		return nil, common.ErrEmptyDataset
	}
	if len(yTrue) != len(yPred) || len(yTrue) != len(scores) {
		return nil, common.ErrVocabularyMismatch
	}

	report := &Report{Rows: len(yTrue)}

	exact := 0
	for i := range yTrue {
		if equalRow(yTrue[i], yPred[i]) {
			exact++
		}
	}
	report.Accuracy = float64(exact) / float64(len(yTrue))

	var weightedSum, apSum float64
	var supportTotal, defined int
	for j, class := range classes {
		lm := labelMetrics(yTrue, yPred, scores, j)
		lm.Label = class
		report.PerLabel = append(report.PerLabel, lm)

		if !lm.Defined {
			report.Undefined = append(report.Undefined, class)
			continue
		}
		weightedSum += lm.F1 * float64(lm.Support)
		supportTotal += lm.Support
		apSum += lm.AveragePrecision
		defined++
	}
	if supportTotal > 0 {
		report.WeightedF1 = weightedSum / float64(supportTotal)
	}
	if defined > 0 {
		report.AveragePrecision = apSum / float64(defined)
	}

	return report, nil
}

// labelMetrics scores a single label column.
func labelMetrics(yTrue, yPred [][]bool, scores [][]float64, col int) LabelMetrics {
	var tp, fp, fn, support int
	for i := range yTrue {
		switch {
		case yTrue[i][col] && yPred[i][col]:
			tp++
		case !yTrue[i][col] && yPred[i][col]:
			fp++
		case yTrue[i][col] && !yPred[i][col]:
			fn++
		}
		if yTrue[i][col] {
			support++
		}
	}

	lm := LabelMetrics{Support: support}
	if support == 0 {
		return lm
	}
	lm.Defined = true

	if tp+fp > 0 {
		lm.Precision = float64(tp) / float64(tp+fp)
	}
	lm.Recall = float64(tp) / float64(tp+fn)
	if lm.Precision+lm.Recall > 0 {
		lm.F1 = 2 * lm.Precision * lm.Recall / (lm.Precision + lm.Recall)
	}
	lm.AveragePrecision = averagePrecision(yTrue, scores, col)

	return lm
}

// averagePrecision ranks rows by score for one label and averages the
// precision at each positive hit.
func averagePrecision(yTrue [][]bool, scores [][]float64, col int) float64 {
	order := make([]int, len(yTrue))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]][col] > scores[order[b]][col]
	})

	var hits, positives int
	var precisionSum float64
	for rank, idx := range order {
		if yTrue[idx][col] {
			hits++
			precisionSum += float64(hits) / float64(rank+1)
			positives++
		}
	}
	if positives == 0 {
		return 0
	}
	return precisionSum / float64(positives)
}

func equalRow(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
