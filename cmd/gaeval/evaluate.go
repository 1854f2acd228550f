// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/gaeval/linkpred"
	"github.com/katalvlaran/gaeval/matrix"
	"github.com/katalvlaran/gaeval/sampler"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// Sampler streams of one evaluation run.
const (
	streamPositive = 0
	streamNegative = 1
)

func newEvaluateCmd(g *globals) *cobra.Command {
	var (
		embPath  string
		testFrac float64
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score an embedding on held-out edges",
		Long: `Assemble the configured dataset, hold out a fraction of its edges as
positive pairs, draw as many non-edges as negative pairs and report
accuracy, ROC-AUC and average precision of sigmoid(E[u]·E[v]).

The embedding file is a gonum mat.Dense in binary form with one row per
node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("test-frac") {
				g.cfg.Eval.TestFraction = testFrac
				if err := g.cfg.Validate(); err != nil {
					return err
				}
			}
			ds, err := g.assemble()
			if err != nil {
				return err
			}
			emb, err := readEmbedding(embPath)
			if err != nil {
				return err
			}
			if r, _ := emb.Dims(); r != ds.Nodes() {
				return fmt.Errorf("embedding has %d rows for %d nodes: %w", r, ds.Nodes(), matrix.ErrDimensionMismatch)
			}

			edges, err := sampler.PositivePairs(ds.Adjacency)
			if err != nil {
				return err
			}
			n := int(math.Ceil(g.cfg.Eval.TestFraction * float64(len(edges))))
			pos, err := sampler.ChoosePairs(edges, n, g.cfg.SamplerOptions(streamPositive)...)
			if err != nil {
				return err
			}
			neg, err := sampler.NegativePairs(ds.Adjacency, n, g.cfg.SamplerOptions(streamNegative)...)
			if err != nil {
				return err
			}
			g.log.Info("pairs drawn", "edges", len(edges), "positives", len(pos), "negatives", len(neg))

			rep, err := linkpred.EvaluateReport(
				linkpred.PairsFrom(pos), linkpred.PairsFrom(neg), emb, ds.Adjacency, g.cfg.EvalOptions()...)
			if err != nil {
				return err
			}
			if rep.Mislabeled > 0 {
				g.log.Warn("pairs disagree with the reference adjacency", "mislabeled", rep.Mislabeled)
			}
			g.log.Info("evaluated",
				"accuracy", rep.Accuracy, "roc_auc", rep.ROCAUC, "average_precision", rep.AveragePrecision)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep.Metrics)
			}
			fmt.Fprintf(out, "accuracy=%.4f roc_auc=%.4f average_precision=%.4f positives=%d negatives=%d\n",
				rep.Accuracy, rep.ROCAUC, rep.AveragePrecision, rep.Positives, rep.Negatives)

			return nil
		},
	}
	cmd.Flags().StringVarP(&embPath, "embedding", "e", "", "Path to the binary embedding matrix")
	cmd.Flags().Float64Var(&testFrac, "test-frac", 0, "Override eval.test_fraction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print metrics as JSON")
	_ = cmd.MarkFlagRequired("embedding")

	return cmd
}

func readEmbedding(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var emb mat.Dense
	if _, err = emb.UnmarshalBinaryFrom(bufio.NewReader(f)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &emb, nil
}
