// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package watch

import "errors"

var (
	// ErrNoDirectories is returned if there is no directory to watch.
	ErrNoDirectories = errors.New("no directories to watch")

	// ErrNoCallback is returned if the change callback is nil.
	ErrNoCallback = errors.New("change callback is nil")

	// ErrChannelClosed is returned if the underlying watcher shuts down
	// unexpectedly.
	ErrChannelClosed = errors.New("watch channel closed")
)
