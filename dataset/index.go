// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseIndex reads one base-10 integer per line. Surrounding blanks are
// trimmed; an empty line or any other content is rejected.
//
// Errors:
//   - ErrIndexFormat with the 1-based line number.
//   - Read errors from r, wrapped.
func ParseIndex(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("ParseIndex: line %d %q: %w", line, text, ErrIndexFormat)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseIndex: after line %d: %w", line, err)
	}

	return out, nil
}

// ParseIndexFile is ParseIndex over the file at path.
func ParseIndexFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := ParseIndex(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return idx, nil
}

// WriteIndex writes idx one integer per line.
func WriteIndex(w io.Writer, idx []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range idx {
		if _, err := bw.WriteString(strconv.Itoa(v) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
