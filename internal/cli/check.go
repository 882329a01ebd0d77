// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vladimir-ch/laplacian"
	"github.com/vladimir-ch/laplacian/internal/dok"
	"github.com/vladimir-ch/laplacian/internal/mtx"
)

// CheckOptions holds the flags of the check command.
type CheckOptions struct {
	GridOptions
	Tol float64
}

// CheckResult summarizes the comparison of a stored matrix with the
// built operator.
type CheckResult struct {
	Entries    int     // Nonzero entries present in either matrix
	Mismatches int     // Entries differing by more than the tolerance
	MaxDiff    float64 // Largest absolute difference
	MaxResid   float64 // Largest absolute difference of the products with testVector
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <file.mtx>",
		Short: "Compare a Matrix Market file with the operator of a grid",
		Long: `Read a matrix in Matrix Market coordinate format and compare it entry by
entry with the discrete Laplacian of the grid. Both matrices are also
applied to a fixed vector and the largest difference of the products is
reported. Exits with status 1 when any entry differs by more than the
tolerance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, args[0], cmd.OutOrStdout())
		},
	}

	addGridFlags(cmd, &opts.GridOptions)
	cmd.Flags().Float64Var(&opts.Tol, "tol", 1e-12, "absolute or relative tolerance")

	return cmd
}

func runCheck(root *RootOptions, opts *CheckOptions, path string, w io.Writer) error {
	if !(opts.Tol >= 0) {
		return WrapExitError(ExitInvalidInput, fmt.Sprintf("invalid --tol %v", opts.Tol), nil)
	}
	op, err := buildOperator(root, &opts.GridOptions)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitInvalidInput, "open matrix", err)
	}
	defer f.Close()
	stored, err := mtx.Read(f)
	if err != nil {
		return WrapExitError(ExitInvalidInput, "read "+path, err)
	}
	root.logger.Debug("read matrix", "path", path, "rows", stored.Rows, "cols", stored.Cols, "nnz", stored.NNZ())

	r, c := op.Dims()
	if stored.Rows != r || stored.Cols != c {
		return WrapExitError(ExitFailure,
			fmt.Sprintf("dimension mismatch: %s is %d×%d, operator is %d×%d", path, stored.Rows, stored.Cols, r, c), nil)
	}

	res := compare(root, op, stored, opts.Tol)
	if res.Mismatches > 0 {
		return WrapExitError(ExitFailure,
			fmt.Sprintf("%d of %d entries differ, max |Δ| = %g", res.Mismatches, res.Entries, res.MaxDiff), nil)
	}
	_, err = fmt.Fprintf(w, "ok: %d entries match, max |Δ| = %g, max |Δ(A*x)| = %g\n", res.Entries, res.MaxDiff, res.MaxResid)
	return err
}

func compare(root *RootOptions, op *laplacian.Operator, stored *dok.DOK, tol float64) CheckResult {
	var res CheckResult
	visit := func(i, j int, want, have float64) {
		res.Entries++
		d := math.Abs(want - have)
		res.MaxDiff = math.Max(res.MaxDiff, d)
		if !scalar.EqualWithinAbsOrRel(want, have, tol, tol) {
			res.Mismatches++
			root.logger.Debug("entry differs", "row", i, "col", j, "want", want, "have", have)
		}
	}
	op.Do(func(i, j int, v float64) {
		visit(i, j, v, stored.At(i, j))
	})
	stored.Do(func(i, j int, v float64) {
		if op.At(i, j) == 0 {
			visit(i, j, 0, v)
		}
	})
	res.MaxResid = residual(op, stored)
	root.logger.Debug("compared products", "max_resid", res.MaxResid)
	return res
}

// testVector returns the vector the products are compared on. Its
// entries are small integers, so that both products are exact whenever
// the matrices hold the same small integers.
func testVector(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%7 + 1)
	}
	return x
}

// residual returns max |A*x - B*x| for x = testVector.
func residual(op *laplacian.Operator, stored *dok.DOK) float64 {
	n, _ := op.Dims()
	x := testVector(n)
	want := make([]float64, n)
	have := make([]float64, n)
	op.MulVec(want, x)
	stored.MulVec(have, x)
	floats.Sub(have, want)
	return floats.Norm(have, math.Inf(1))
}
