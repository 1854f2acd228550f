// SPDX-License-Identifier: MIT

package linkpred

import (
	"fmt"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/mat"
)

// Evaluate scores positive and negative pairs against emb and returns the
// accuracy, ROC-AUC and average precision of the predictions.
//
// Implementation:
//   - Stage 1: validate inputs (nil, pair policy, label mix, indices).
//   - Stage 2: prob = σ(E[u]·E[v]) for each positive, then each negative.
//   - Stage 3: labels = 1 for the positive block, 0 for the negative block.
//   - Stage 4: accuracy at the threshold, ROC-AUC, average precision.
//
// ref is consulted only to read the reference entry of each pair (reported
// in EvaluateReport); it never introduces or removes pairs.
//
// Errors:
//   - ErrNilEmbedding, ErrNilReference.
//   - matrix.ErrDimensionMismatch: unequal list lengths under
//     PolicyRequireEqual, or a pair outside the embedding / reference shape.
//   - ErrDegenerateLabels: no positives or no negatives.
func Evaluate(pos, neg []Pair, emb mat.Matrix, ref matrix.Matrix, opts ...Option) (Metrics, error) {
	r, err := EvaluateReport(pos, neg, emb, ref, opts...)
	if err != nil {
		return Metrics{}, err
	}

	return r.Metrics, nil
}

// EvaluateReport is Evaluate with per-pair diagnostics.
func EvaluateReport(pos, neg []Pair, emb mat.Matrix, ref matrix.Matrix, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)

	sc, err := NewScorer(emb)
	if err != nil {
		return nil, err
	}
	if matrix.ValidateNotNil(ref) != nil {
		return nil, ErrNilReference
	}
	if o.policy == PolicyRequireEqual && len(pos) != len(neg) {
		return nil, fmt.Errorf("linkpred: %d positive vs %d negative pairs under %s: %w",
			len(pos), len(neg), o.policy, matrix.ErrDimensionMismatch)
	}
	if len(pos) == 0 || len(neg) == 0 {
		return nil, fmt.Errorf("linkpred: %d positive, %d negative pairs: %w", len(pos), len(neg), ErrDegenerateLabels)
	}

	rep := &Report{
		Positives:   len(pos),
		Negatives:   len(neg),
		Predictions: make([]Prediction, 0, len(pos)+len(neg)),
	}
	if err = rep.score(sc, ref, pos, true); err != nil {
		return nil, err
	}
	if err = rep.score(sc, ref, neg, false); err != nil {
		return nil, err
	}

	labels := make([]bool, len(rep.Predictions))
	probs := make([]float64, len(rep.Predictions))
	for i, p := range rep.Predictions {
		labels[i] = p.Positive
		probs[i] = p.Prob
	}
	rep.Accuracy = Accuracy(labels, probs, o.threshold)
	if rep.ROCAUC, err = ROCAUC(labels, probs); err != nil {
		return nil, err
	}
	if rep.AveragePrecision, err = AveragePrecision(labels, probs); err != nil {
		return nil, err
	}

	return rep, nil
}

// score appends the predictions for one block of pairs.
func (r *Report) score(sc *Scorer, ref matrix.Matrix, pairs []Pair, positive bool) error {
	for _, p := range pairs {
		x, err := sc.Score(p.U, p.V)
		if err != nil {
			return err
		}
		refV, err := ref.At(p.U, p.V)
		if err != nil {
			return fmt.Errorf("linkpred: reference %dx%d: %w: %w", ref.Rows(), ref.Cols(), matrix.ErrDimensionMismatch, err)
		}
		if (refV != 0) != positive {
			r.Mislabeled++
		}
		r.Predictions = append(r.Predictions, Prediction{
			Pair:      p,
			Score:     x,
			Prob:      Sigmoid(x),
			Reference: refV,
			Positive:  positive,
		})
	}

	return nil
}
