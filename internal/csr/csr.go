// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csr provides an immutable compressed sparse row matrix.
package csr

import (
	"sort"

	"github.com/exascience/pargo/parallel"

	"github.com/vladimir-ch/laplacian/internal/triplet"
)

// parallelRows is the number of rows from which MulVec splits the
// product into row blocks processed concurrently.
const parallelRows = 4096

// Matrix is a sparse matrix in compressed sparse row format. Column
// indices within a row are strictly increasing and no stored value is
// zero.
type Matrix struct {
	r, c   int
	indptr []int
	ind    []int
	data   []float64
}

// FromTriplets compresses the contributions in t. Contributions with
// equal (i, j) are summed in the order they were appended, and entries
// that sum to exactly zero are dropped.
func FromTriplets(t *triplet.Matrix) *Matrix {
	r, c := t.Dims()
	m := &Matrix{
		r:      r,
		c:      c,
		indptr: make([]int, r+1),
		ind:    make([]int, t.Len()),
		data:   make([]float64, t.Len()),
	}

	// Counting sort by row keeps the append order within each row.
	t.Do(func(i, _ int, _ float64) {
		m.indptr[i+1]++
	})
	for i := 0; i < r; i++ {
		m.indptr[i+1] += m.indptr[i]
	}
	next := make([]int, r)
	copy(next, m.indptr[:r])
	t.Do(func(i, j int, v float64) {
		k := next[i]
		m.ind[k] = j
		m.data[k] = v
		next[i]++
	})

	w := 0
	for i := 0; i < r; i++ {
		start, end := m.indptr[i], m.indptr[i+1]
		m.indptr[i] = w
		insertionSort(m.ind[start:end], m.data[start:end])
		for k := start; k < end; {
			j := m.ind[k]
			v := m.data[k]
			for k++; k < end && m.ind[k] == j; k++ {
				v += m.data[k]
			}
			if v == 0 {
				continue
			}
			m.ind[w] = j
			m.data[w] = v
			w++
		}
	}
	m.indptr[r] = w
	m.ind = m.ind[:w:w]
	m.data = m.data[:w:w]
	return m
}

// insertionSort sorts a row by column index. It is stable, so duplicate
// contributions keep their append order. Rows are short.
func insertionSort(ind []int, data []float64) {
	for k := 1; k < len(ind); k++ {
		j, v := ind[k], data[k]
		l := k
		for ; l > 0 && ind[l-1] > j; l-- {
			ind[l] = ind[l-1]
			data[l] = data[l-1]
		}
		ind[l] = j
		data[l] = v
	}
}

func (m *Matrix) Dims() (r, c int) {
	return m.r, m.c
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	return len(m.data)
}

func (m *Matrix) At(i, j int) float64 {
	if i < 0 || m.r <= i {
		panic("csr: row index out of range")
	}
	if j < 0 || m.c <= j {
		panic("csr: column index out of range")
	}
	start, end := m.indptr[i], m.indptr[i+1]
	k := start + sort.SearchInts(m.ind[start:end], j)
	if k < end && m.ind[k] == j {
		return m.data[k]
	}
	return 0
}

// Do calls fn for every stored entry in row-major order with increasing
// column indices.
func (m *Matrix) Do(fn func(i, j int, v float64)) {
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.ind[k], m.data[k])
		}
	}
}

// MulVec computes dst = A*x.
func (m *Matrix) MulVec(dst, x []float64) {
	if m.c != len(x) {
		panic("csr: dimension mismatch")
	}
	if m.r != len(dst) {
		panic("csr: dimension mismatch")
	}
	if m.r < parallelRows {
		m.mulRows(dst, x, 0, m.r)
		return
	}
	parallel.Range(0, m.r, 0, func(low, high int) {
		m.mulRows(dst, x, low, high)
	})
}

func (m *Matrix) mulRows(dst, x []float64, low, high int) {
	for i := low; i < high; i++ {
		var sum float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sum += m.data[k] * x[m.ind[k]]
		}
		dst[i] = sum
	}
}
