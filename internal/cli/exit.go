// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/vladimir-ch/laplacian"
)

// Exit codes for CLI commands.
const (
	ExitSuccess       = 0 // Successful execution
	ExitFailure       = 1 // Operator differs from the checked file
	ExitInvalidInput  = 2 // Invalid grid, flag or input file
	ExitResourceLimit = 3 // Grid or dense output too large
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode extracts the exit code from an error. Errors that are not an
// ExitError come from flag and argument parsing and map to
// ExitInvalidInput.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitInvalidInput
}

// buildExitError classifies an error returned by the builder.
func buildExitError(err error) *ExitError {
	if errors.Is(err, laplacian.ErrResourceLimitExceeded) {
		return WrapExitError(ExitResourceLimit, "build operator", err)
	}
	return WrapExitError(ExitInvalidInput, "build operator", err)
}
