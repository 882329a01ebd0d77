// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"io"
	"os"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimir-ch/laplacian"
	"github.com/vladimir-ch/laplacian/internal/mtx"
)

var testConfig = Config{
	MaxPoints: laplacian.DefaultMaxPoints,
	MaxDense:  1024,
	Format:    "triplet",
}

func execute(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const smallTriplets = `0 0 -16
0 1 4
0 2 4
1 0 4
1 1 -16
1 3 4
2 0 4
2 2 -16
2 3 4
3 1 4
3 2 4
3 3 -16
`

const smallMTX = `%%MatrixMarket matrix coordinate real symmetric
4 4 8
1 1 -16
2 1 4
2 2 -16
3 1 4
3 3 -16
4 2 4
4 3 4
4 4 -16
`

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(testConfig)
	require.NotNil(t, cmd)
	assert.Equal(t, "laplacian", cmd.Use)

	for _, name := range []string{"build", "check"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
			for _, flag := range []string{"nx", "ny", "lx", "ly", "pbc", "isotropic", "degenerate"} {
				assert.NotNil(t, sub.Flags().Lookup(flag), "flag %s", flag)
			}
		})
	}

	maxPoints := cmd.PersistentFlags().Lookup("max-points")
	require.NotNil(t, maxPoints)
	assert.Equal(t, "4194304", maxPoints.DefValue)
}

func TestBuildTriplet(t *testing.T) {
	out, err := execute(t, testConfig, "build", "--nx", "2", "--ny", "2", "--lx", "1", "--ly", "1", "--pbc", "false")
	require.NoError(t, err)
	assert.Equal(t, smallTriplets, out)
}

func TestBuildMTX(t *testing.T) {
	out, err := execute(t, testConfig, "build", "--nx", "2", "--ny", "2", "--format", "mtx")
	require.NoError(t, err)
	assert.Equal(t, smallMTX, out)

	cfg := testConfig
	cfg.Format = "mtx"
	out, err = execute(t, cfg, "build", "--nx", "2", "--ny", "2")
	require.NoError(t, err)
	assert.Equal(t, smallMTX, out, "format default from config")
}

func TestBuildDense(t *testing.T) {
	out, err := execute(t, testConfig, "build", "--nx", "2", "--ny", "2", "-f", "dense")
	require.NoError(t, err)
	assert.Contains(t, out, "-16")
	assert.Contains(t, out, "4")

	cfg := testConfig
	cfg.MaxDense = 3
	_, err = execute(t, cfg, "build", "--nx", "2", "--ny", "2", "-f", "dense")
	require.Error(t, err)
	assert.Equal(t, ExitResourceLimit, ExitCode(err))
}

func TestBuildDegenerateRing(t *testing.T) {
	out, err := execute(t, testConfig, "build", "--nx", "4", "--ny", "1", "--lx", "4", "--ly", "1", "--pbc", "true", "--degenerate")
	require.NoError(t, err)
	assert.Contains(t, out, "0 0 -2\n")
	assert.Contains(t, out, "0 3 1\n")
	assert.Contains(t, out, "3 0 1\n")
}

func TestBuildErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
		code int
		is   error
	}{
		{"pbc=1", []string{"--nx", "2", "--ny", "2", "--pbc", "1"}, ExitInvalidInput, laplacian.ErrInvalidArgumentType},
		{"nx=1", []string{"--nx", "1", "--ny", "2"}, ExitInvalidInput, laplacian.ErrInvalidGridSize},
		{"ny=1", []string{"--nx", "4", "--ny", "1", "--pbc", "true"}, ExitInvalidInput, laplacian.ErrInvalidGridSize},
		{"lx=0", []string{"--nx", "2", "--ny", "2", "--lx", "0"}, ExitInvalidInput, laplacian.ErrInvalidExtent},
		{"negative ly", []string{"--nx", "2", "--ny", "2", "--ly", "-3"}, ExitInvalidInput, laplacian.ErrInvalidExtent},
		{"isotropic", []string{"--nx", "2", "--ny", "2", "--ly", "2", "--isotropic"}, ExitInvalidInput, laplacian.ErrInvalidExtent},
		{"limit", []string{"--nx", "2", "--ny", "2", "--max-points", "3"}, ExitResourceLimit, laplacian.ErrResourceLimitExceeded},
		{"zero limit", []string{"--nx", "2", "--ny", "2", "--max-points", "0"}, ExitInvalidInput, nil},
		{"format", []string{"--nx", "2", "--ny", "2", "--format", "json"}, ExitInvalidInput, nil},
		{"missing ny", []string{"--nx", "2"}, ExitInvalidInput, nil},
		{"bad nx", []string{"--nx", "two", "--ny", "2"}, ExitInvalidInput, nil},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, testConfig, append([]string{"build"}, test.args...)...)
			require.Error(t, err)
			assert.Equal(t, test.code, ExitCode(err))
			if test.is != nil {
				assert.ErrorIs(t, err, test.is)
			}
		})
	}
}

func TestVerboseLogging(t *testing.T) {
	cmd := NewRootCommand(testConfig)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"build", "--nx", "3", "--ny", "2", "-v"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "built operator")
	assert.Contains(t, errOut.String(), "nnz=")
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "op.mtx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheck(t *testing.T) {
	path := writeFile(t, smallMTX)

	out, err := execute(t, testConfig, "check", path, "--nx", "2", "--ny", "2")
	require.NoError(t, err)
	assert.Equal(t, "ok: 12 entries match, max |Δ| = 0, max |Δ(A*x)| = 0\n", out)

	_, err = execute(t, testConfig, "check", path, "--nx", "2", "--ny", "2", "--pbc", "true")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, err.Error(), "8 of 12 entries differ")

	_, err = execute(t, testConfig, "check", path, "--nx", "3", "--ny", "2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestCheckExtraEntry(t *testing.T) {
	path := writeFile(t, `%%MatrixMarket matrix coordinate real general
4 4 13
1 1 -16
1 2 4
1 3 4
2 1 4
2 2 -16
2 4 4
3 1 4
3 3 -16
3 4 4
4 2 4
4 3 4
4 4 -16
4 1 1e-3
`)
	_, err := execute(t, testConfig, "check", path, "--nx", "2", "--ny", "2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, err.Error(), "1 of 13 entries differ")

	out, err := execute(t, testConfig, "check", path, "--nx", "2", "--ny", "2", "--tol", "1e-2")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 13 entries match")
}

func TestCheckResidual(t *testing.T) {
	op, err := laplacian.Build2D(2, 2, 1, 1, false)
	require.NoError(t, err)
	stored, err := mtx.Read(strings.NewReader(smallMTX))
	require.NoError(t, err)
	root := &RootOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	res := compare(root, op, stored, 0)
	assert.Zero(t, res.Mismatches)
	assert.Zero(t, res.MaxResid)

	// x[0] = 1 in the test vector, so a perturbed first column shows up
	// in the products unchanged.
	stored.AddAt(3, 0, 0.5)
	res = compare(root, op, stored, 0)
	assert.Equal(t, 1, res.Mismatches)
	assert.Equal(t, 0.5, res.MaxResid)
}

func TestCheckErrors(t *testing.T) {
	_, err := execute(t, testConfig, "check", filepath.Join(t.TempDir(), "missing.mtx"), "--nx", "2", "--ny", "2")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))

	path := writeFile(t, "not a matrix\n")
	_, err = execute(t, testConfig, "check", path, "--nx", "2", "--ny", "2")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))

	_, err = execute(t, testConfig, "check", "--nx", "2", "--ny", "2")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, testConfig, cfg)

	cfg, err = LoadConfig(map[string]string{
		"LAPLACIAN_MAX_POINTS": "100",
		"LAPLACIAN_MAX_DENSE":  "10",
		"LAPLACIAN_FORMAT":     "mtx",
	})
	require.NoError(t, err)
	assert.Equal(t, Config{MaxPoints: 100, MaxDense: 10, Format: "mtx"}, cfg)

	for _, environ := range []map[string]string{
		{"LAPLACIAN_MAX_POINTS": "many"},
		{"LAPLACIAN_MAX_POINTS": "0"},
		{"LAPLACIAN_MAX_DENSE": "-1"},
		{"LAPLACIAN_FORMAT": "xml"},
	} {
		_, err := LoadConfig(environ)
		assert.Error(t, err, "environ %v", environ)
	}
}
