// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	MaxPoints int

	cfg    Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the laplacian CLI. cfg
// supplies the flag defaults.
func NewRootCommand(cfg Config) *cobra.Command {
	opts := &RootOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "laplacian",
		Short: "Build finite-difference Laplacian operators",
		Long: `Build the five-point discrete Laplacian on a regular 2D grid.

Grid points are numbered row by row with x varying fastest, so the point
(i, j) is row and column j*nx + i of the operator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			if opts.MaxPoints <= 0 {
				return WrapExitError(ExitInvalidInput, fmt.Sprintf("invalid --max-points %d: must be positive", opts.MaxPoints), nil)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().IntVar(&opts.MaxPoints, "max-points", cfg.MaxPoints, "maximum number of grid points")

	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}
