// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import "fmt"

// ParsePeriodic parses the boundary condition flag from text, for
// example a command-line argument. Only "true" and "false" are accepted.
// Other spellings of a truth value, such as "1" or "T", are rejected with
// an error wrapping ErrInvalidArgumentType.
func ParsePeriodic(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: need a boolean for pbc, have %q", ErrInvalidArgumentType, s)
}
