// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/gamefs/shaderfs/shader"
	"github.com/gamefs/shaderfs/vfs"
)

// openShaderFile returns a [vfs.FileOpenFunc] serving the canonical
// text form of the given record.
//
// The record is owned by the returned function. Every invocation yields
// a fresh file over the same record, so concurrent readers do not share
// read offsets.
func openShaderFile(record *shader.Shader) vfs.FileOpenFunc {
	return func() (fs.File, error) {
		return newObjectFile(record)
	}
}

var _ fs.File = (*objectFile)(nil)

// objectFile is a virtual file backed by a shader record instead of
// stored bytes.
type objectFile struct {
	record *shader.Shader
	reader *bytes.Reader
}

func newObjectFile(record *shader.Shader) (*objectFile, error) {
	text, err := record.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("marshal shader %s: %w", record.Path, err)
	}

	return &objectFile{
		record: record,
		reader: bytes.NewReader(text),
	}, nil
}

// Stat implements [fs.File].
func (f *objectFile) Stat() (fs.FileInfo, error) {
	return &objectFileInfo{
		name:   path.Base(f.record.Path),
		size:   f.reader.Size(),
		record: f.record,
	}, nil
}

// Read implements [fs.File].
func (f *objectFile) Read(b []byte) (int, error) {
	return f.reader.Read(b) //nolint:wrapcheck
}

// Close implements [fs.File].
func (*objectFile) Close() error {
	return nil
}

var _ fs.FileInfo = (*objectFileInfo)(nil)

type objectFileInfo struct {
	name   string
	size   int64
	record *shader.Shader
}

func (i *objectFileInfo) Name() string     { return i.name }
func (i *objectFileInfo) Size() int64      { return i.size }
func (*objectFileInfo) Mode() fs.FileMode  { return 0o444 }
func (*objectFileInfo) ModTime() time.Time { return time.Time{} }
func (*objectFileInfo) IsDir() bool        { return false }
func (i *objectFileInfo) String() string   { return fs.FormatFileInfo(i) }

// Sys returns the shader record the file serves.
func (i *objectFileInfo) Sys() any { return i.record }
