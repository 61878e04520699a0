// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package pakfs reads and writes asset packs stored as CPIO archives.
//
// A pack is a flat snapshot of a game asset directory. [Load] reads an
// archive into a virtual file tree that can serve as the source layer
// of a shader namespace, and [Write] serializes any [io/fs.FS] back
// into an archive, which makes packs the export format for synthesized
// namespaces as well.
package pakfs
