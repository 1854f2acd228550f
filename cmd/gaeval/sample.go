// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/gaeval/sampler"
	"github.com/spf13/cobra"
)

func newSampleCmd(g *globals) *cobra.Command {
	var (
		row    int
		rounds int
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw balanced samples from one adjacency row",
		Long: `Treat row --row of the assembled adjacency matrix as an indicator
vector and print --rounds balanced samples: every neighbour followed by
as many uniformly drawn non-neighbours.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := g.assemble()
			if err != nil {
				return err
			}
			indicator, err := sampler.IndicatorFromRow(ds.Adjacency, row)
			if err != nil {
				return err
			}
			b, err := sampler.NewBalanced(indicator, g.cfg.SamplerOptions(0)...)
			if err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
			g.log.Info("sampler ready", "row", row, "edges", len(b.Edges()), "non_edges", len(b.NonEdges()))

			for i := 0; i < rounds; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), b.Sample())
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "Adjacency row to sample from")
	cmd.Flags().IntVar(&rounds, "rounds", 1, "Number of independent samples")

	return cmd
}
