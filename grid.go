// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

// Grid describes a regular two-dimensional grid of Nx×Ny points covering
// a box of size Lx×Ly.
//
// Grid points are numbered in row-major order with x varying fastest:
// the point (i, j), 0 <= i < Nx, 0 <= j < Ny, has the linear index
//  j*Nx + i.
// The same numbering is used for the rows and columns of the Operator
// and for the elements of the vectors it acts on.
type Grid struct {
	// Nx and Ny are the numbers of grid
	// points along x and y.
	Nx, Ny int

	// Lx and Ly are the physical lengths
	// of the box along x and y.
	Lx, Ly float64

	// Periodic enables periodic boundary
	// conditions along both axes: the last
	// column is adjacent to the first one
	// and the last row to the first one.
	Periodic bool
}

// Len returns the number of grid points.
func (g Grid) Len() int {
	return g.Nx * g.Ny
}

// Index returns the linear index of the grid point (i, j).
func (g Grid) Index(i, j int) int {
	if i < 0 || g.Nx <= i {
		panic("laplacian: x index out of range")
	}
	if j < 0 || g.Ny <= j {
		panic("laplacian: y index out of range")
	}
	return j*g.Nx + i
}

// Coords returns the grid coordinates of the point with linear index p.
func (g Grid) Coords(p int) (i, j int) {
	if p < 0 || g.Len() <= p {
		panic("laplacian: point index out of range")
	}
	return p % g.Nx, p / g.Nx
}

// Spacing returns the distance between neighboring grid points along x
// and y.
func (g Grid) Spacing() (hx, hy float64) {
	return g.Lx / float64(g.Nx), g.Ly / float64(g.Ny)
}

// Coefficients returns the squared inverse grid spacings
//  cx = 1/hx² = (Nx/Lx)²,
//  cy = 1/hy² = (Ny/Ly)².
func (g Grid) Coefficients() (cx, cy float64) {
	rx := float64(g.Nx) / g.Lx
	ry := float64(g.Ny) / g.Ly
	return rx * rx, ry * ry
}
