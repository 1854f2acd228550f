// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// File suffixes of one dataset, relative to "ind.<name>".
const (
	SuffixX         = "x"
	SuffixTX        = "tx"
	SuffixAllX      = "allx"
	SuffixGraph     = "graph"
	SuffixTestIndex = "test.index"
)

// FileName returns the path of one dataset artefact under dir.
func FileName(dir, name, suffix string) string {
	return filepath.Join(dir, "ind."+name+"."+suffix)
}

// Load reads the raw blocks of dataset name from dir. The x block is
// optional; every other artefact must exist.
func Load(dir, name string) (*Blocks, error) {
	var (
		b   Blocks
		err error
	)
	if b.X, err = readBlock(FileName(dir, name, SuffixX)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		b.X = nil
	}
	if b.TX, err = readBlock(FileName(dir, name, SuffixTX)); err != nil {
		return nil, err
	}
	if b.AllX, err = readBlock(FileName(dir, name, SuffixAllX)); err != nil {
		return nil, err
	}
	if b.Graph, err = readGraph(FileName(dir, name, SuffixGraph)); err != nil {
		return nil, err
	}
	if b.TestIndex, err = ParseIndexFile(FileName(dir, name, SuffixTestIndex)); err != nil {
		return nil, err
	}

	return &b, nil
}

// LoadAssembled is Load followed by Assemble.
func LoadAssembled(dir, name string, opts ...Option) (*Dataset, error) {
	b, err := Load(dir, name)
	if err != nil {
		return nil, err
	}

	return Assemble(*b, opts...)
}

// Save writes b under dir in the layout Load reads. A nil X is skipped.
func Save(dir, name string, b *Blocks) error {
	if b == nil {
		return fmt.Errorf("Save: %w", matrix.ErrNilMatrix)
	}
	if matrix.ValidateNotNil(b.X) == nil {
		if err := writeBlock(FileName(dir, name, SuffixX), b.X); err != nil {
			return err
		}
	}
	if err := writeBlock(FileName(dir, name, SuffixTX), b.TX); err != nil {
		return err
	}
	if err := writeBlock(FileName(dir, name, SuffixAllX), b.AllX); err != nil {
		return err
	}

	raw, err := yaml.Marshal(map[int][]int(b.Graph))
	if err != nil {
		return fmt.Errorf("Save: graph: %w", err)
	}
	if err = os.WriteFile(FileName(dir, name, SuffixGraph), raw, 0o644); err != nil {
		return err
	}

	f, err := os.Create(FileName(dir, name, SuffixTestIndex))
	if err != nil {
		return err
	}
	if err = WriteIndex(f, b.TestIndex); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func readBlock(path string) (*matrix.Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var d mat.Dense
	if _, err = d.UnmarshalBinaryFrom(bufio.NewReader(f)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := matrix.SparseFromGonum(&d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

func writeBlock(path string, m matrix.Matrix) error {
	d, err := matrix.ToGonum(m)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err = d.MarshalBinaryTo(bw); err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

func readGraph(path string) (AdjacencyList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g map[int][]int
	if err = yaml.NewDecoder(f).Decode(&g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return AdjacencyList(g), nil
}
