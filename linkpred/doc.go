// SPDX-License-Identifier: MIT

// Package linkpred scores node pairs from a learned embedding and measures
// link-prediction quality.
//
// A graph auto-encoder reconstructs the adjacency as σ(E·Eᵀ): the
// probability of an edge (i, j) is the logistic of the inner product of the
// two node embeddings. Evaluate scores a held-out set of true edges
// (positives) and sampled non-edges (negatives) that way and reports
//
//   - Accuracy at a 0.5 probability threshold,
//   - ROC-AUC (trapezoidal area under the full ROC curve),
//   - Average precision (step-wise area under the precision-recall curve).
//
// Only the requested pairs are scored; the N×N reconstruction is never
// materialized (Reconstruct exists for small graphs and inspection).
//
// Preconditions:
//
//   - Positives and negatives must both be non-empty (ErrDegenerateLabels).
//   - By default both lists must have the same length, which keeps accuracy
//     unbiased; WithPairPolicy(PolicyOwnLength) lifts that requirement.
//   - Every pair index must be a row of the embedding and a cell of the
//     reference adjacency (matrix.ErrDimensionMismatch).
//
// Evaluation is pure: the embedding and reference adjacency are only read,
// and identical inputs produce bit-identical metrics.
package linkpred
