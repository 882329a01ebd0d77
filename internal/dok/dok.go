// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok provides a mutable sparse matrix stored as a dictionary of
// keys.
package dok

import "sort"

type DOK struct {
	Rows, Cols int

	data map[index]float64
}

type index struct {
	row, col int
}

func New(r, c int) *DOK {
	if r < 0 || c < 0 {
		panic("dok: negative dimension")
	}
	return &DOK{
		Rows: r,
		Cols: c,
		data: make(map[index]float64),
	}
}

func (m *DOK) Dims() (r, c int) {
	return m.Rows, m.Cols
}

func (m *DOK) At(i, j int) float64 {
	m.check(i, j)
	return m.data[index{i, j}]
}

// SetAt stores v at (i, j). Storing zero removes the entry.
func (m *DOK) SetAt(i, j int, v float64) {
	m.check(i, j)
	if v == 0 {
		delete(m.data, index{i, j})
		return
	}
	m.data[index{i, j}] = v
}

// AddAt adds v to the entry at (i, j).
func (m *DOK) AddAt(i, j int, v float64) {
	m.check(i, j)
	m.SetAt(i, j, m.data[index{i, j}]+v)
}

// NNZ returns the number of stored entries.
func (m *DOK) NNZ() int {
	return len(m.data)
}

// Do calls fn for every stored entry in row-major order with increasing
// column indices.
func (m *DOK) Do(fn func(i, j int, v float64)) {
	keys := make([]index, 0, len(m.data))
	for ij := range m.data {
		keys = append(keys, ij)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].row != keys[b].row {
			return keys[a].row < keys[b].row
		}
		return keys[a].col < keys[b].col
	})
	for _, ij := range keys {
		fn(ij.row, ij.col, m.data[ij])
	}
}

// MulVec computes dst = A*x. Every row is summed in increasing column
// order, as in Do.
func (m *DOK) MulVec(dst, x []float64) {
	if m.Cols != len(x) {
		panic("dok: dimension mismatch")
	}
	if m.Rows != len(dst) {
		panic("dok: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	m.Do(func(i, j int, v float64) {
		dst[i] += v * x[j]
	})
}

func (m *DOK) check(i, j int) {
	if i < 0 || m.Rows <= i {
		panic("dok: row index out of range")
	}
	if j < 0 || m.Cols <= j {
		panic("dok: column index out of range")
	}
}
