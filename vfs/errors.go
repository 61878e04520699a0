// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned if a tree node that is looked up does not
	// exist.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned if a tree node exists that was not expected.
	ErrExist = fs.ErrExist

	// ErrInvalid is returned if a path or argument is invalid for the
	// requested operation.
	ErrInvalid = fs.ErrInvalid

	// ErrNotDir is returned if a file exists but is not a directory.
	ErrNotDir = errors.New("not a directory")

	// ErrNotRegular is returned if an open function yields something
	// other than a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
