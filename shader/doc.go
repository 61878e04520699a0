// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package shader provides the Quake III shader record model together
// with a tolerant script parser and a canonical text writer.
//
// A shader script defines any number of shaders. Each definition starts
// with the shader's path, followed by a brace-delimited body of
// directives and stage blocks. The parser keeps the directives relevant
// for asset addressing and preview and ignores everything else. Only
// structural errors like unbalanced braces make a script malformed.
package shader
