// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package cmd provides the CLI command entry point for shaderfs. It
// handles flag parsing, game profile loading, error handling, and
// output handling.
package cmd
