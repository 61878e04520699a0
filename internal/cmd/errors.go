// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if help or version output was requested. The
	// command exits successfully in this case.
	ErrHelp = flag.ErrHelp

	// ErrReadBuildInfo is returned if the build info required for version
	// output is not available.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrEmptyPath is returned for flags that require a non-empty path.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrNotTreePath is returned for paths that do not address a file
	// inside the game tree.
	ErrNotTreePath = errors.New("not a valid path inside the game tree")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
