// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

type appender interface {
	Append(i, j int, v float64)
}

// assemble appends the stencil contributions of the grid g to dst and
// counts in arms the stencil arms attached to every point.
//
// Neighbors are always found from 2D coordinates, never by stepping the
// linear index, so that wrapping along x stays within a grid row.
//
// On a periodic axis of length one both arms of a point reach the point
// itself and cancel that axis's share of the diagonal exactly. The axis
// is then left out of the diagonal and its arms are only counted.
func assemble(dst appender, arms []uint8, g Grid, cx, cy float64) {
	couple := func(p, q int, v float64) {
		dst.Append(p, q, v)
		dst.Append(q, p, v)
		arms[p]++
		arms[q]++
	}
	selfWrap := func(p int) {
		arms[p] += 2
	}

	diag := -(2*cx + 2*cy)
	switch {
	case g.Periodic && g.Nx == 1:
		diag = -2 * cy
	case g.Periodic && g.Ny == 1:
		diag = -2 * cx
	}
	for p := 0; p < g.Len(); p++ {
		dst.Append(p, p, diag)
	}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			couple(g.Index(i, j), g.Index(i+1, j), cx)
		}
	}
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			couple(g.Index(i, j), g.Index(i, j+1), cy)
		}
	}
	if !g.Periodic {
		return
	}
	for j := 0; j < g.Ny; j++ {
		if g.Nx == 1 {
			selfWrap(g.Index(0, j))
			continue
		}
		couple(g.Index(g.Nx-1, j), g.Index(0, j), cx)
	}
	for i := 0; i < g.Nx; i++ {
		if g.Ny == 1 {
			selfWrap(g.Index(i, 0))
			continue
		}
		couple(g.Index(i, g.Ny-1), g.Index(i, 0), cy)
	}
}

// contributions returns the number of entries assemble appends for g.
// The caller guarantees that g.Len() <= maxAssembled.
func contributions(g Grid) int {
	pairs := (g.Nx-1)*g.Ny + g.Nx*(g.Ny-1)
	if g.Periodic {
		if g.Nx > 1 {
			pairs += g.Ny
		}
		if g.Ny > 1 {
			pairs += g.Nx
		}
	}
	return g.Len() + 2*pairs
}
