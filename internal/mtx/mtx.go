// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mtx reads and writes sparse real matrices in the Matrix Market
// coordinate format.
package mtx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vladimir-ch/laplacian/internal/dok"
)

// ErrFormat is wrapped by errors returned by Read for malformed input.
var ErrFormat = errors.New("mtx: invalid Matrix Market data")

const banner = "%%MatrixMarket"

// Sparse is a matrix that can enumerate its nonzero elements.
type Sparse interface {
	Dims() (r, c int)
	Do(fn func(i, j int, v float64))
}

// Write writes the lower triangle of the symmetric matrix m to w as a
// real symmetric coordinate matrix.
func Write(w io.Writer, m Sparse) error {
	r, c := m.Dims()
	if r != c {
		panic("mtx: matrix not square")
	}
	var nnz int
	m.Do(func(i, j int, _ float64) {
		if j <= i {
			nnz++
		}
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s matrix coordinate real symmetric\n", banner)
	fmt.Fprintf(bw, "%d %d %d\n", r, c, nnz)
	m.Do(func(i, j int, v float64) {
		if j <= i {
			fmt.Fprintf(bw, "%d %d %s\n", i+1, j+1, strconv.FormatFloat(v, 'g', -1, 64))
		}
	})
	return bw.Flush()
}

// Read reads a real coordinate matrix in general or symmetric form.
// Entries of a symmetric matrix are mirrored across the diagonal.
// Repeated entries are summed.
func Read(r io.Reader) (*dok.DOK, error) {
	sc := bufio.NewScanner(r)
	line := 0

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	}
	line++
	symmetric, err := parseBanner(sc.Text())
	if err != nil {
		return nil, err
	}

	var m *dok.DOK
	var want, have int
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		fields := strings.Fields(text)
		if m == nil {
			rows, cols, nnz, err := parseSize(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
			}
			if symmetric && rows != cols {
				return nil, fmt.Errorf("%w: line %d: symmetric matrix is %d×%d", ErrFormat, line, rows, cols)
			}
			m = dok.New(rows, cols)
			want = nnz
			continue
		}
		i, j, v, err := parseEntry(fields, m.Rows, m.Cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
		}
		if symmetric && j > i {
			return nil, fmt.Errorf("%w: line %d: entry above the diagonal", ErrFormat, line)
		}
		m.AddAt(i, j, v)
		if symmetric && i != j {
			m.AddAt(j, i, v)
		}
		have++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: missing size line", ErrFormat)
	}
	if have != want {
		return nil, fmt.Errorf("%w: have %d entries, header declares %d", ErrFormat, have, want)
	}
	return m, nil
}

func parseBanner(text string) (symmetric bool, err error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) != 5 || fields[0] != strings.ToLower(banner) {
		return false, fmt.Errorf("%w: missing %s banner", ErrFormat, banner)
	}
	if fields[1] != "matrix" || fields[2] != "coordinate" {
		return false, fmt.Errorf("%w: unsupported object %q %q", ErrFormat, fields[1], fields[2])
	}
	if fields[3] != "real" && fields[3] != "integer" {
		return false, fmt.Errorf("%w: unsupported field %q", ErrFormat, fields[3])
	}
	switch fields[4] {
	case "general":
		return false, nil
	case "symmetric":
		return true, nil
	}
	return false, fmt.Errorf("%w: unsupported symmetry %q", ErrFormat, fields[4])
}

func parseSize(fields []string) (rows, cols, nnz int, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, errors.New("size line needs three fields")
	}
	var v [3]int
	for k, f := range fields {
		v[k], err = strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, err
		}
		if v[k] < 0 {
			return 0, 0, 0, fmt.Errorf("negative size %d", v[k])
		}
	}
	return v[0], v[1], v[2], nil
}

func parseEntry(fields []string, rows, cols int) (i, j int, v float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, errors.New("entry needs three fields")
	}
	i, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	j, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	if i < 1 || rows < i || j < 1 || cols < j {
		return 0, 0, 0, fmt.Errorf("index (%d, %d) out of range", i, j)
	}
	v, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, err
	}
	return i - 1, j - 1, v, nil
}
