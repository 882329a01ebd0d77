// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command laplacian builds finite-difference Laplacian operators.
package main

import (
	"fmt"
	"os"

	"github.com/vladimir-ch/laplacian/internal/cli"
)

func main() {
	cfg, err := cli.LoadConfig(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "laplacian:", err)
		os.Exit(cli.ExitInvalidInput)
	}
	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "laplacian:", err)
		os.Exit(cli.ExitCode(err))
	}
}
