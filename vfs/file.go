// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"io"
	"io/fs"
	"path"
	"slices"
	"time"
)

const (
	fileMode fs.FileMode = 0o444
	dirMode  fs.FileMode = fs.ModeDir | 0o555
)

type node interface {
	open(entry dirEntry) (fs.File, error)
	mode() fs.FileMode
}

var (
	_ fs.FileInfo = (*fileInfo)(nil)
	_ fs.DirEntry = (*fileInfo)(nil)
	_ fs.DirEntry = (*dirEntry)(nil)
)

type dirEntry struct {
	name string
	node node
}

func (e *dirEntry) Name() string      { return path.Base(e.name) }
func (e *dirEntry) Type() fs.FileMode { return e.node.mode().Type() }
func (e *dirEntry) IsDir() bool       { return e.node.mode().IsDir() }
func (e *dirEntry) String() string    { return fs.FormatDirEntry(e) }

func (e *dirEntry) Info() (fs.FileInfo, error) {
	file, err := e.node.open(*e)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return file.Stat() //nolint:wrapcheck
}

type fileInfo struct {
	dirEntry

	size int64
	sys  any
}

func (i *fileInfo) Size() int64       { return i.size }
func (i *fileInfo) Mode() fs.FileMode { return i.node.mode() }
func (*fileInfo) ModTime() time.Time  { return time.Time{} }
func (i *fileInfo) String() string    { return fs.FormatFileInfo(i) }

// Sys returns the Sys value of the source file a lazy file was opened
// from, so typed payloads survive the [fs.File] boundary.
func (i *fileInfo) Sys() any { return i.sys }

var (
	_ fs.File        = (*openFile)(nil)
	_ fs.ReadDirFile = (*openFile)(nil)
)

type openFile struct {
	info    fileInfo
	reader  io.Reader
	entries []fs.DirEntry
	offset  int
}

// Stat implements [fs.File].
func (f *openFile) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

// Read implements [fs.File].
func (f *openFile) Read(b []byte) (int, error) {
	if f.reader == nil {
		return 0, ErrInvalid
	}

	return f.reader.Read(b) //nolint:wrapcheck
}

// Close implements [fs.File].
func (f *openFile) Close() error {
	closer, ok := f.reader.(io.Closer)
	if !ok {
		return nil
	}

	return closer.Close() //nolint:wrapcheck
}

// ReadDir implements [fs.ReadDirFile].
func (f *openFile) ReadDir(count int) ([]fs.DirEntry, error) {
	if !f.info.IsDir() {
		return nil, ErrNotDir
	}

	start := f.offset
	end := len(f.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	f.offset = end

	return f.entries[start:end], nil
}

var _ node = (lazyFile)(nil)

type lazyFile FileOpenFunc

func (lazyFile) mode() fs.FileMode {
	return fileMode
}

func (f lazyFile) open(entry dirEntry) (fs.File, error) {
	source, err := f()
	if err != nil {
		return nil, err
	}

	sourceInfo, err := source.Stat()
	if err != nil {
		_ = source.Close()
		return nil, err //nolint:wrapcheck
	}

	if !sourceInfo.Mode().IsRegular() {
		_ = source.Close()
		return nil, ErrNotRegular
	}

	openFile := &openFile{
		info: fileInfo{
			dirEntry: entry,
			size:     sourceInfo.Size(),
			sys:      sourceInfo.Sys(),
		},
		reader: source,
	}

	return openFile, nil
}

var _ node = (*directory)(nil)

type directory map[string]node

func (*directory) mode() fs.FileMode {
	return dirMode
}

func (d *directory) open(entry dirEntry) (fs.File, error) {
	openFile := &openFile{
		info: fileInfo{
			dirEntry: entry,
		},
		entries: d.entries(),
	}

	return openFile, nil
}

func (d *directory) entries() []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, len(*d))

	names := make([]string, 0, len(*d))
	for name := range *d {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		entries = append(entries, &dirEntry{
			name: name,
			node: (*d)[name],
		})
	}

	return entries
}

func (d *directory) add(name string, n node) error {
	if name == "." {
		return ErrExist
	}

	_, exists := (*d)[name]
	if exists {
		return ErrExist
	}

	(*d)[name] = n

	return nil
}
