// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import "errors"

// Errors returned by Build and ParsePeriodic. Returned errors wrap one of
// these values with a message naming the failed precondition, so callers
// should test for them with errors.Is.
var (
	ErrInvalidGridSize       = errors.New("laplacian: invalid grid size")
	ErrInvalidExtent         = errors.New("laplacian: invalid extent")
	ErrInvalidArgumentType   = errors.New("laplacian: invalid argument type")
	ErrResourceLimitExceeded = errors.New("laplacian: resource limit exceeded")
)
