// SPDX-License-Identifier: MIT

package linkpred

// Pair is an ordered node pair (U, V).
type Pair struct {
	U, V int
}

// PairsFrom converts [u, v] index pairs (as produced by the sampler
// package) into Pairs.
func PairsFrom(ps [][2]int) []Pair {
	out := make([]Pair, len(ps))
	for i, p := range ps {
		out[i] = Pair{U: p[0], V: p[1]}
	}

	return out
}

// Metrics holds the three link-prediction quality figures, each in [0, 1].
type Metrics struct {
	Accuracy         float64 `json:"accuracy"`
	ROCAUC           float64 `json:"roc_auc"`
	AveragePrecision float64 `json:"average_precision"`
}

// Prediction is the scored form of one evaluated pair.
type Prediction struct {
	Pair
	Score     float64 // raw inner product E[U]·E[V]
	Prob      float64 // σ(Score)
	Reference float64 // reference adjacency entry at (U, V)
	Positive  bool    // supplied as a positive pair
}

// Report extends Metrics with per-pair diagnostics.
type Report struct {
	Metrics
	Positives   int
	Negatives   int
	Mislabeled  int // positives absent from the reference, negatives present in it
	Predictions []Prediction
}
