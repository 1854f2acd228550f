// SPDX-License-Identifier: MIT

package linkpred

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// rocCurve validates the inputs and returns the ROC points ordered from the
// strictest cutoff (0,0) to the loosest (1,1), plus the class counts.
func rocCurve(labels []bool, scores []float64) (tpr, fpr []float64, pos, neg float64, err error) {
	if len(labels) != len(scores) {
		return nil, nil, 0, 0, fmt.Errorf("linkpred: %d labels for %d scores: %w",
			len(labels), len(scores), matrix.ErrDimensionMismatch)
	}
	for i, s := range scores {
		if math.IsNaN(s) {
			return nil, nil, 0, 0, fmt.Errorf("linkpred: score %d: %w", i, matrix.ErrNaNInf)
		}
		if labels[i] {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, nil, 0, 0, fmt.Errorf("linkpred: %v positives, %v negatives: %w", pos, neg, ErrDegenerateLabels)
	}

	y := slices.Clone(scores)
	classes := slices.Clone(labels)
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ = stat.ROC(nil, y, classes, nil)

	return tpr, fpr, pos, neg, nil
}

// ROCAUC returns the area under the ROC curve of scores against labels
// (true = positive). Tied scores contribute a diagonal segment.
//
// Errors:
//   - ErrDegenerateLabels when all labels are equal.
//   - matrix.ErrDimensionMismatch when the slices differ in length.
//   - matrix.ErrNaNInf for NaN scores.
func ROCAUC(labels []bool, scores []float64) (float64, error) {
	tpr, fpr, _, _, err := rocCurve(labels, scores)
	if err != nil {
		return 0, err
	}

	return integrate.Trapezoidal(fpr, tpr), nil
}

// AveragePrecision returns Σₙ (Rₙ − Rₙ₋₁)·Pₙ over the distinct score
// cutoffs in decreasing order, where Pₙ and Rₙ are precision and recall
// when every pair scoring at least the n-th cutoff is predicted positive.
// Same error contract as ROCAUC.
func AveragePrecision(labels []bool, scores []float64) (float64, error) {
	tpr, fpr, pos, neg, err := rocCurve(labels, scores)
	if err != nil {
		return 0, err
	}
	var ap, tp, fp float64
	for k := 1; k < len(tpr); k++ {
		tp = tpr[k] * pos
		fp = fpr[k] * neg
		if tp+fp == 0 {
			continue
		}
		ap += (tpr[k] - tpr[k-1]) * tp / (tp + fp)
	}

	return ap, nil
}

// Accuracy returns the fraction of pairs whose thresholded prediction
// (score > threshold) matches the label. Empty input yields 0.
func Accuracy(labels []bool, scores []float64, threshold float64) float64 {
	n := min(len(labels), len(scores))
	if n == 0 {
		return 0
	}
	var hit int
	for i := 0; i < n; i++ {
		if (scores[i] > threshold) == labels[i] {
			hit++
		}
	}

	return float64(hit) / float64(n)
}
