// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gaeval/config"
	"github.com/katalvlaran/gaeval/dataset"
	"github.com/spf13/cobra"
)

// globals shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "gaeval",
		Short: "Graph embedding link-prediction toolkit",
		Long: `gaeval turns raw planetoid-style blocks into an aligned
(adjacency, features) pair, draws balanced samples from it and scores
node embeddings on held-out edges.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to YAML configuration")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Override log.format (text, json)")

	root.AddCommand(newAssembleCmd(g), newSampleCmd(g), newEvaluateCmd(g))

	return root
}

// init loads the configuration, applies flag overrides and builds the logger.
func (g *globals) init(w io.Writer) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.log = newLogger(w, cfg.Log)

	return nil
}

// assemble loads and aligns the configured dataset.
func (g *globals) assemble() (*dataset.Dataset, error) {
	dc := g.cfg.Dataset
	g.log.Debug("loading dataset", "dir", dc.Dir, "name", dc.Name, "isolated_test_nodes", dc.IsolatedTestNodes)

	blocks, err := dataset.Load(dc.Dir, dc.Name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dc.Name, err)
	}
	ds, err := dataset.Assemble(*blocks, g.cfg.DatasetOptions()...)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", dc.Name, err)
	}
	g.log.Info("dataset assembled",
		"name", dc.Name,
		"nodes", ds.Nodes(),
		"features", ds.Features.Cols(),
		"test_nodes", len(blocks.TestIndex),
		"adjacency_nnz", ds.Adjacency.NNZ())

	return ds, nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return l
}
