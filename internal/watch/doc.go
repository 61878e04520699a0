// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

// Package watch triggers a callback when watched directory trees change.
// Events are debounced so bursts of writes, like an editor saving a
// shader script or a batch texture export, collapse into a single
// callback run.
package watch
