// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/vladimir-ch/laplacian"
)

// GridOptions holds the flags describing the grid.
type GridOptions struct {
	Nx, Ny     int
	Lx, Ly     float64
	PBC        string // parsed strictly, see laplacian.ParsePeriodic
	Isotropic  bool
	Degenerate bool
}

func addGridFlags(cmd *cobra.Command, opts *GridOptions) {
	cmd.Flags().IntVar(&opts.Nx, "nx", 0, "number of grid points along x")
	cmd.Flags().IntVar(&opts.Ny, "ny", 0, "number of grid points along y")
	cmd.Flags().Float64Var(&opts.Lx, "lx", 1, "box length along x")
	cmd.Flags().Float64Var(&opts.Ly, "ly", 1, "box length along y")
	cmd.Flags().StringVar(&opts.PBC, "pbc", "false", "periodic boundary conditions (true|false)")
	cmd.Flags().BoolVar(&opts.Isotropic, "isotropic", false, "require equal grid spacing along x and y")
	cmd.Flags().BoolVar(&opts.Degenerate, "degenerate", false, "allow a single grid point along one axis")
	_ = cmd.MarkFlagRequired("nx")
	_ = cmd.MarkFlagRequired("ny")
}

// buildOperator validates the grid flags and builds the operator.
func buildOperator(root *RootOptions, opts *GridOptions) (*laplacian.Operator, error) {
	pbc, err := laplacian.ParsePeriodic(opts.PBC)
	if err != nil {
		return nil, WrapExitError(ExitInvalidInput, "invalid --pbc", err)
	}
	g := laplacian.Grid{
		Nx:       opts.Nx,
		Ny:       opts.Ny,
		Lx:       opts.Lx,
		Ly:       opts.Ly,
		Periodic: pbc,
	}
	op, err := laplacian.Build(g, laplacian.Settings{
		MaxPoints:       root.MaxPoints,
		Isotropic:       opts.Isotropic,
		AllowDegenerate: opts.Degenerate,
	})
	if err != nil {
		return nil, buildExitError(err)
	}
	cx, cy := op.Coefficients()
	root.logger.Debug("built operator",
		"nx", g.Nx, "ny", g.Ny, "lx", g.Lx, "ly", g.Ly, "pbc", pbc,
		"cx", cx, "cy", cy, "nnz", op.NNZ())
	return op, nil
}
