// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triplet provides an append-only coordinate list of matrix
// contributions. Repeated (i, j) pairs are kept as separate entries and
// act additively.
package triplet

type triplet struct {
	i, j int
	v    float64
}

type Matrix struct {
	r, c int
	data []triplet
}

func New(r, c int) *Matrix {
	if r < 0 || c < 0 {
		panic("triplet: negative dimension")
	}
	return &Matrix{
		r: r,
		c: c,
	}
}

func (m *Matrix) Dims() (r, c int) {
	return m.r, m.c
}

// Len returns the number of appended contributions.
func (m *Matrix) Len() int {
	return len(m.data)
}

// Grow reserves space for n more contributions.
func (m *Matrix) Grow(n int) {
	if n <= cap(m.data)-len(m.data) {
		return
	}
	data := make([]triplet, len(m.data), len(m.data)+n)
	copy(data, m.data)
	m.data = data
}

func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.r <= i {
		panic("triplet: row index out of range")
	}
	if j < 0 || m.c <= j {
		panic("triplet: column index out of range")
	}
	m.data = append(m.data, triplet{i, j, v})
}

// Do calls fn for every contribution in the order they were appended.
func (m *Matrix) Do(fn func(i, j int, v float64)) {
	for _, aij := range m.data {
		fn(aij.i, aij.j, aij.v)
	}
}

func (m *Matrix) MulVec(dst, x []float64) {
	if m.c != len(x) {
		panic("triplet: dimension mismatch")
	}
	if m.r != len(dst) {
		panic("triplet: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}
