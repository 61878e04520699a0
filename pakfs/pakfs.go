// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/cavaliergopher/cpio"

	"github.com/gamefs/shaderfs/vfs"
)

const memFileMode fs.FileMode = 0o444

// Load reads a CPIO archive into a virtual file tree.
//
// Directory entries are created as they appear and missing parents are
// created implicitly. Regular file contents are buffered in memory, so
// the returned tree stays readable after the reader is gone. Entries
// of any other type are skipped.
func Load(r io.Reader) (*vfs.FS, error) {
	tree := vfs.New()
	reader := cpio.NewReader(r)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}

		err = loadEntry(tree, reader, hdr)
		if err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// LoadFile reads the CPIO archive at the given path into a virtual
// file tree.
func LoadFile(name string) (*vfs.FS, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	tree, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	return tree, nil
}

func loadEntry(tree *vfs.FS, body io.Reader, hdr *cpio.Header) error {
	mode := hdr.FileInfo().Mode()

	switch {
	case mode.IsDir():
		err := tree.MkdirAll(hdr.Name)
		if err != nil {
			return fmt.Errorf("add directory: %w", err)
		}
	case mode.IsRegular():
		data, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("read %s: %w", hdr.Name, err)
		}

		err = tree.Add(hdr.Name, openMemFile(path.Base(hdr.Name), data))
		if err != nil {
			return fmt.Errorf("add file: %w", err)
		}
	}

	return nil
}

// openMemFile returns a [vfs.FileOpenFunc] serving the given buffered
// contents.
func openMemFile(name string, data []byte) vfs.FileOpenFunc {
	return func() (fs.File, error) {
		file := &memFile{
			info:   memFileInfo{name: name, size: int64(len(data))},
			reader: bytes.NewReader(data),
		}

		return file, nil
	}
}

var _ fs.File = (*memFile)(nil)

type memFile struct {
	info   memFileInfo
	reader *bytes.Reader
}

// Stat implements [fs.File].
func (f *memFile) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

// Read implements [fs.File].
func (f *memFile) Read(b []byte) (int, error) {
	return f.reader.Read(b) //nolint:wrapcheck
}

// Close implements [fs.File].
func (*memFile) Close() error { return nil }

var _ fs.FileInfo = (*memFileInfo)(nil)

type memFileInfo struct {
	name string
	size int64
}

func (i *memFileInfo) Name() string     { return i.name }
func (i *memFileInfo) Size() int64      { return i.size }
func (*memFileInfo) Mode() fs.FileMode  { return memFileMode }
func (*memFileInfo) ModTime() time.Time { return time.Time{} }
func (*memFileInfo) IsDir() bool        { return false }
func (*memFileInfo) Sys() any           { return nil }
