// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package vfs provides an in-memory virtual file tree together with
// helpers for querying and traversing any [io/fs.FS].
//
// The tree supports directories and regular files and is read through
// the standard [io/fs.FS] interface. For memory efficiency regular
// files are not copied into the tree itself. Instead, a file is
// registered with an open function that is invoked on each access, so
// content can be backed by another file system or constructed on
// demand.
package vfs
