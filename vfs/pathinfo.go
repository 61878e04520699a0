// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs

import "io/fs"

// PathInfo classifies what a path refers to in a file system.
type PathInfo int

const (
	// PathInfoMissing means the path does not exist or cannot be
	// inspected.
	PathInfoMissing PathInfo = iota

	// PathInfoFile means the path refers to a regular file.
	PathInfoFile

	// PathInfoDirectory means the path refers to a directory.
	PathInfoDirectory
)

// String implements [fmt.Stringer].
func (i PathInfo) String() string {
	switch i {
	case PathInfoFile:
		return "file"
	case PathInfoDirectory:
		return "directory"
	default:
		return "missing"
	}
}

// PathInfoOf reports whether name refers to a regular file, a directory
// or nothing in fsys.
//
// Any stat failure is reported as [PathInfoMissing], as are irregular
// files like device nodes.
func PathInfoOf(fsys fs.FS, name string) PathInfo {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return PathInfoMissing
	}

	switch {
	case info.IsDir():
		return PathInfoDirectory
	case info.Mode().IsRegular():
		return PathInfoFile
	default:
		return PathInfoMissing
	}
}
