// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vladimir-ch/laplacian/internal/csr"
)

var (
	_ mat.Matrix    = (*Operator)(nil)
	_ mat.Symmetric = (*Operator)(nil)
)

// Operator is the discrete Laplacian on a grid, stored as a sparse
// symmetric matrix. An Operator is never modified after Build returns
// it and is safe for concurrent use.
type Operator struct {
	grid   Grid
	cx, cy float64
	arms   []uint8
	m      *csr.Matrix
}

// Grid returns the grid the operator was built for.
func (o *Operator) Grid() Grid {
	return o.grid
}

// Coefficients returns the coupling coefficients between neighbors along
// x and y.
func (o *Operator) Coefficients() (cx, cy float64) {
	return o.cx, o.cy
}

// Dims returns the dimensions of the operator. It implements the
// mat.Matrix interface.
func (o *Operator) Dims() (r, c int) {
	return o.m.Dims()
}

// SymmetricDim implements the mat.Symmetric interface.
func (o *Operator) SymmetricDim() int {
	n, _ := o.m.Dims()
	return n
}

// At returns the element at row i, column j.
func (o *Operator) At(i, j int) float64 {
	return o.m.At(i, j)
}

// T returns the transpose of the operator, which is the operator itself.
func (o *Operator) T() mat.Matrix {
	return o
}

// NNZ returns the number of nonzero elements.
func (o *Operator) NNZ() int {
	return o.m.NNZ()
}

// Do calls fn for every nonzero element in row-major order with
// increasing column indices.
func (o *Operator) Do(fn func(i, j int, v float64)) {
	o.m.Do(fn)
}

// Couplings returns the number of stencil arms attached to the grid
// point with linear index p. Every point of a periodic grid has four.
// Arms that reach the same neighbor, or the point itself on an axis of
// length one, are counted separately.
func (o *Operator) Couplings(p int) int {
	if p < 0 || len(o.arms) <= p {
		panic("laplacian: point index out of range")
	}
	return int(o.arms[p])
}

// MulVec computes dst = A*x. The lengths of dst and x must both equal
// the number of grid points.
func (o *Operator) MulVec(dst, x []float64) {
	o.m.MulVec(dst, x)
}

// Dense returns the operator as a dense symmetric matrix. It allocates
// n² elements, n being the number of grid points.
func (o *Operator) Dense() *mat.SymDense {
	n := o.SymmetricDim()
	d := mat.NewSymDense(n, nil)
	o.m.Do(func(i, j int, v float64) {
		if i <= j {
			d.SetSym(i, j, v)
		}
	})
	return d
}
