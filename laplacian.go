// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package laplacian builds the five-point finite-difference Laplacian on
// a regular two-dimensional grid.
//
// The operator approximates
//  ∂²u/∂x² + ∂²u/∂y²
// at every grid point by second-order central differences. Applied to a
// grid function flattened in the row-major order described by Grid, it
// yields the discrete Laplacian of that function. Boundaries are either
// open, so that points on the edge of the grid have fewer neighbors, or
// periodic.
package laplacian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vladimir-ch/laplacian/internal/csr"
	"github.com/vladimir-ch/laplacian/internal/triplet"
)

// DefaultMaxPoints is the default limit on the number of grid points
// accepted by Build.
const DefaultMaxPoints = 1 << 22

// maxAssembled bounds the number of grid points so that counting the
// stencil contributions of a grid cannot overflow an int.
const maxAssembled = math.MaxInt / 11

// isotropyTol is the relative tolerance used to compare Nx/Lx and Ny/Ly
// when Settings.Isotropic is set.
const isotropyTol = 1e-12

// Settings holds optional constraints
// for building an Operator.
type Settings struct {
	// MaxPoints is the limit on the
	// number of grid points Nx*Ny.
	// Larger grids are rejected with
	// ErrResourceLimitExceeded.
	// If it is zero, DefaultMaxPoints
	// will be used.
	MaxPoints int

	// Isotropic requires the grid
	// spacing to be equal along both
	// axes, that is Nx/Lx == Ny/Ly.
	Isotropic bool

	// AllowDegenerate relaxes the
	// minimum grid size from two points
	// along each axis to two points in
	// total. A periodic axis with a
	// single point does not contribute
	// to the operator, so that for
	// example a 4×1 periodic grid is the
	// one-dimensional periodic Laplacian.
	AllowDegenerate bool
}

func DefaultSettings() Settings {
	return Settings{
		MaxPoints: DefaultMaxPoints,
	}
}

func defaultSettings(s *Settings) {
	if s.MaxPoints == 0 {
		s.MaxPoints = DefaultMaxPoints
	}
}

// Build2D returns the discrete Laplacian on an nx×ny grid covering a box
// of size lx×ly, with periodic boundary conditions if pbc is true. It is
// equivalent to
//  Build(Grid{Nx: nx, Ny: ny, Lx: lx, Ly: ly, Periodic: pbc}, DefaultSettings())
func Build2D(nx, ny int, lx, ly float64, pbc bool) (*Operator, error) {
	return Build(Grid{Nx: nx, Ny: ny, Lx: lx, Ly: ly, Periodic: pbc}, DefaultSettings())
}

// Build returns the discrete Laplacian on the grid g.
//
// The returned Operator A is the n×n matrix, n = g.Nx*g.Ny, with
//  A[p,p] = -(2*cx + 2*cy)
// for every grid point p, and cx (resp. cy) added to A[p,q] and A[q,p]
// for every pair of points p, q adjacent along x (resp. y), where cx and
// cy are given by g.Coefficients. If g.Periodic is true, the point
// (Nx-1, j) is also adjacent to (0, j) and the point (i, Ny-1) to (i, 0).
//
// Every adjacency contributes on its own. On a periodic grid with two
// points along an axis the two points are adjacent both directly and
// through the boundary, so the coupling between them is doubled. On a
// periodic grid with one point along an axis, every point is its own
// neighbor along that axis and the axis is left out of the diagonal.
//
// Build validates g and s before allocating anything. It returns an error
// wrapping ErrInvalidGridSize, ErrResourceLimitExceeded or
// ErrInvalidExtent if a precondition fails.
func Build(g Grid, s Settings) (*Operator, error) {
	defaultSettings(&s)
	if err := validate(g, s); err != nil {
		return nil, err
	}

	cx, cy := g.Coefficients()
	n := g.Len()
	t := triplet.New(n, n)
	t.Grow(contributions(g))
	arms := make([]uint8, n)
	assemble(t, arms, g, cx, cy)

	return &Operator{
		grid: g,
		cx:   cx,
		cy:   cy,
		arms: arms,
		m:    csr.FromTriplets(t),
	}, nil
}

func validate(g Grid, s Settings) error {
	if s.MaxPoints < 0 {
		panic("laplacian: negative point limit")
	}

	minPoints := 2
	if s.AllowDegenerate {
		minPoints = 1
	}
	if g.Nx < minPoints || g.Ny < minPoints {
		return fmt.Errorf("%w: need at least %d grid points along each axis, have %d×%d",
			ErrInvalidGridSize, minPoints, g.Nx, g.Ny)
	}
	limit := min(s.MaxPoints, maxAssembled)
	if g.Nx > limit/g.Ny {
		return fmt.Errorf("%w: %d×%d grid exceeds the limit of %d points",
			ErrResourceLimitExceeded, g.Nx, g.Ny, limit)
	}
	if g.Len() < 2 {
		return fmt.Errorf("%w: need at least two grid points, have %d",
			ErrInvalidGridSize, g.Len())
	}

	if !(g.Lx > 0) || !(g.Ly > 0) {
		return fmt.Errorf("%w: need positive lengths, have lx=%v ly=%v",
			ErrInvalidExtent, g.Lx, g.Ly)
	}
	cx, cy := g.Coefficients()
	if !finitePositive(cx) || !finitePositive(cy) {
		return fmt.Errorf("%w: grid spacing out of range, have hx=%v hy=%v",
			ErrInvalidExtent, g.Lx/float64(g.Nx), g.Ly/float64(g.Ny))
	}
	if s.Isotropic {
		rx := float64(g.Nx) / g.Lx
		ry := float64(g.Ny) / g.Ly
		if !scalar.EqualWithinRel(rx, ry, isotropyTol) {
			return fmt.Errorf("%w: grid is not regular, nx/lx=%v ny/ly=%v",
				ErrInvalidExtent, rx, ry)
		}
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
