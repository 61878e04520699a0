// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package mount exposes a file system namespace to the kernel via
// FUSE.
//
// Any [io/fs.FS] can be served. The mount is strictly read only, the
// kernel answers every mutating operation with EROFS before it reaches
// the backing namespace.
package mount
