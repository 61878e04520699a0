// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import "errors"

var (
	// ErrNoSourceFS is returned if a [Config] carries no source file
	// system.
	ErrNoSourceFS = errors.New("source file system is nil")

	// ErrNoShaderDir is returned if a [Config] carries no shader script
	// directory.
	ErrNoShaderDir = errors.New("shader script directory is empty")
)
