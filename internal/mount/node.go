// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package mount

import (
	"context"
	"io/fs"
	"path"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
)

const (
	dirMode  fs.FileMode = fs.ModeDir | 0o555
	fileMode fs.FileMode = 0o444
)

var (
	_ fusefs.Node               = (*dirNode)(nil)
	_ fusefs.NodeStringLookuper = (*dirNode)(nil)
	_ fusefs.HandleReadDirAller = (*dirNode)(nil)
)

// dirNode serves a directory of the backing file system.
type dirNode struct {
	fsys fs.FS
	name string
}

// Attr implements [fusefs.Node].
func (*dirNode) Attr(_ context.Context, attr *fuse.Attr) error {
	attr.Mode = dirMode

	return nil
}

// Lookup implements [fusefs.NodeStringLookuper].
func (d *dirNode) Lookup(
	_ context.Context,
	name string,
) (fusefs.Node, error) {
	childName := path.Join(d.name, name)

	info, err := fs.Stat(d.fsys, childName)
	if err != nil {
		return nil, syscall.ENOENT
	}

	if info.IsDir() {
		return &dirNode{fsys: d.fsys, name: childName}, nil
	}

	return &fileNode{fsys: d.fsys, name: childName}, nil
}

// ReadDirAll implements [fusefs.HandleReadDirAller].
func (d *dirNode) ReadDirAll(_ context.Context) ([]fuse.Dirent, error) {
	entries, err := fs.ReadDir(d.fsys, d.name)
	if err != nil {
		return nil, syscall.EIO
	}

	dirents := make([]fuse.Dirent, 0, len(entries))

	for _, entry := range entries {
		direntType := fuse.DT_File
		if entry.IsDir() {
			direntType = fuse.DT_Dir
		}

		dirents = append(dirents, fuse.Dirent{
			Name: entry.Name(),
			Type: direntType,
		})
	}

	return dirents, nil
}

var (
	_ fusefs.Node       = (*fileNode)(nil)
	_ fusefs.NodeOpener = (*fileNode)(nil)
)

// fileNode serves a regular file of the backing file system.
type fileNode struct {
	fsys fs.FS
	name string
}

// Attr implements [fusefs.Node].
//
// Stat on a lazy virtual file invokes its open function, so the size of
// constructed content is reported correctly.
func (f *fileNode) Attr(_ context.Context, attr *fuse.Attr) error {
	info, err := fs.Stat(f.fsys, f.name)
	if err != nil {
		return syscall.ENOENT
	}

	attr.Mode = fileMode
	attr.Size = uint64(info.Size())
	attr.Mtime = info.ModTime()

	return nil
}

// Open implements [fusefs.NodeOpener].
//
// The whole file content is buffered in the handle. [io/fs.File] offers
// no reading at offsets and shader entries are small.
func (f *fileNode) Open(
	_ context.Context,
	req *fuse.OpenRequest,
	_ *fuse.OpenResponse,
) (fusefs.Handle, error) {
	if !req.Flags.IsReadOnly() {
		return nil, syscall.EROFS
	}

	content, err := fs.ReadFile(f.fsys, f.name)
	if err != nil {
		return nil, syscall.EIO
	}

	return &fileHandle{content: content}, nil
}

var (
	_ fusefs.Handle         = (*fileHandle)(nil)
	_ fusefs.HandleReader   = (*fileHandle)(nil)
	_ fusefs.HandleReleaser = (*fileHandle)(nil)
)

type fileHandle struct {
	content []byte
}

// Read implements [fusefs.HandleReader].
func (h *fileHandle) Read(
	_ context.Context,
	req *fuse.ReadRequest,
	resp *fuse.ReadResponse,
) error {
	if req.Offset >= int64(len(h.content)) {
		resp.Data = nil

		return nil
	}

	end := req.Offset + int64(req.Size)
	if end > int64(len(h.content)) {
		end = int64(len(h.content))
	}

	resp.Data = h.content[req.Offset:end]

	return nil
}

// Release implements [fusefs.HandleReleaser].
func (*fileHandle) Release(
	_ context.Context,
	_ *fuse.ReleaseRequest,
) error {
	return nil
}
