// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/vladimir-ch/laplacian"
	"github.com/vladimir-ch/laplacian/internal/mtx"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"triplet", "mtx", "dense"}

// BuildOptions holds the flags of the build command.
type BuildOptions struct {
	GridOptions
	Format string
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an operator and write it to stdout",
		Long: `Build the discrete Laplacian of the grid and write it to stdout.

Formats:
  triplet  one "row col value" line per nonzero, zero-based
  mtx      Matrix Market coordinate file, lower triangle
  dense    the full matrix, for small grids only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, opts, cmd.OutOrStdout())
		},
	}

	addGridFlags(cmd, &opts.GridOptions)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", rootOpts.cfg.Format, "output format (triplet|mtx|dense)")

	return cmd
}

func runBuild(root *RootOptions, opts *BuildOptions, w io.Writer) error {
	if !isValidFormat(opts.Format) {
		return WrapExitError(ExitInvalidInput,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
	}
	op, err := buildOperator(root, &opts.GridOptions)
	if err != nil {
		return err
	}
	return writeOperator(w, op, opts.Format, root.cfg.MaxDense)
}

func writeOperator(w io.Writer, op *laplacian.Operator, format string, maxDense int) error {
	switch format {
	case "triplet":
		return writeTriplets(w, op)
	case "mtx":
		return mtx.Write(w, op)
	case "dense":
		if n := op.SymmetricDim(); n > maxDense {
			return WrapExitError(ExitResourceLimit,
				fmt.Sprintf("dense output of %d rows exceeds the limit of %d", n, maxDense), nil)
		}
		_, err := fmt.Fprintf(w, "%v\n", mat.Formatted(op.Dense(), mat.Squeeze()))
		return err
	}
	panic("cli: unhandled format " + format)
}

func writeTriplets(w io.Writer, op *laplacian.Operator) error {
	var err error
	op.Do(func(i, j int, v float64) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%d %d %s\n", i, j, strconv.FormatFloat(v, 'g', -1, 64))
	})
	return err
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
