// SPDX-License-Identifier: MIT

// Command gaeval assembles planetoid-style datasets, draws balanced samples
// and scores node embeddings on link prediction.
//
//	gaeval assemble --config gaeval.yaml
//	gaeval sample   --config gaeval.yaml --row 12
//	gaeval evaluate --config gaeval.yaml --embedding emb.bin
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
