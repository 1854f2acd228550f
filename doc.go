// SPDX-License-Identifier: MIT

// Package gaeval is a small toolkit around graph-embedding link prediction:
// it prepares transductive datasets, draws balanced samples and scores node
// embeddings on held-out edges.
//
// 🚀 What is in the box?
//
//	• dataset/: load planetoid-style blocks, align features and adjacency
//	  over one node numbering, zero-fill isolated test nodes
//	• sampler/: balanced positive/negative index samples, non-edge pairs
//	• linkpred/: σ(E[u]·E[v]) scoring, accuracy, ROC-AUC, average precision
//	• matrix/: Dense and row-list Sparse matrices, row stacking and
//	  reindexing, gonum bridges
//	• config/: typed YAML configuration
//	• cmd/gaeval: the command-line front end
//
// Typical flow:
//
//	blocks ──► dataset.Assemble ──► (adjacency, features) ──► your model
//	                                      │                       │
//	                                      ▼                       ▼
//	                         sampler.ChoosePairs/NegativePairs   embedding
//	                                      └──────► linkpred.Evaluate ◄┘
//
// Every random draw takes an explicit seed or source; every operation is
// deterministic for fixed inputs.
//
//	go install github.com/katalvlaran/gaeval/cmd/gaeval@latest
package gaeval
