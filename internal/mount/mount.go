// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package mount

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
)

const (
	fsName    = "shaderfs"
	fsSubtype = "shaderfs"
)

// Mount serves fsys at mountpoint until ctx is canceled or the
// connection to the kernel breaks.
//
// It blocks while serving. On cancellation the mountpoint is released
// and nil is returned.
func Mount(
	ctx context.Context,
	fsys fs.FS,
	mountpoint string,
	logger *slog.Logger,
) error {
	conn, err := fuse.Mount(
		mountpoint,
		fuse.FSName(fsName),
		fuse.Subtype(fsSubtype),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mountpoint, err)
	}

	logger.Info("Mounted namespace", slog.String("mountpoint", mountpoint))

	served := make(chan error, 1)

	go func() {
		served <- fusefs.Serve(conn, &filesystem{fsys: fsys})
	}()

	select {
	case <-ctx.Done():
		logger.Info("Unmounting namespace",
			slog.String("mountpoint", mountpoint))

		err := fuse.Unmount(mountpoint)
		if err != nil {
			logger.Warn("Unmount failed", slog.Any("error", err))
		}

		_ = conn.Close()
		<-served

		return nil
	case err := <-served:
		_ = conn.Close()

		if err != nil {
			return fmt.Errorf("serve %s: %w", mountpoint, err)
		}

		return nil
	}
}

var _ fusefs.FS = (*filesystem)(nil)

type filesystem struct {
	fsys fs.FS
}

// Root implements [fusefs.FS].
func (f *filesystem) Root() (fusefs.Node, error) {
	return &dirNode{fsys: f.fsys, name: "."}, nil
}
