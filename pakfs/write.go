// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/cavaliergopher/cpio"

	"github.com/gamefs/shaderfs/vfs"
)

const dirLinkCount = 2

// Write serializes the given file system into a CPIO archive.
//
// Directories are written before their contents, in lexical walk
// order, so [Load] can rebuild the same tree. Only directories and
// regular files are written, entries of any other type are skipped.
// The root directory itself is not written.
func Write(fsys fs.FS, w io.Writer) error {
	writer := newCPIOWriter(w)

	walkFn := func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		return writeEntry(writer, fsys, name, entry)
	}

	err := fs.WalkDir(fsys, ".", walkFn)
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	return writer.Close()
}

func writeEntry(
	w *cpioWriter,
	fsys fs.FS,
	name string,
	entry fs.DirEntry,
) error {
	switch {
	case name == ".":
		return nil
	case entry.IsDir():
		return w.writeDirectory(name)
	case entry.Type().IsRegular():
		source, err := fsys.Open(name)
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		defer source.Close()

		return w.writeRegular(name, source)
	default:
		return nil
	}
}

// cpioWriter wraps [cpio.Writer] with the entry types packs are made
// of.
type cpioWriter struct {
	cpio *cpio.Writer
}

func newCPIOWriter(w io.Writer) *cpioWriter {
	return &cpioWriter{cpio.NewWriter(w)}
}

// Close closes the archive. Flush is called by the underlying closer.
func (w *cpioWriter) Close() error {
	err := w.cpio.Close()
	if err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

func (w *cpioWriter) writeHeader(hdr *cpio.Header) error {
	err := w.cpio.WriteHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// writeDirectory adds a directory entry for the given path to the
// archive.
func (w *cpioWriter) writeDirectory(name string) error {
	header := &cpio.Header{
		Name:  name,
		Mode:  cpio.TypeDir | cpio.ModePerm,
		Links: dirLinkCount,
	}

	return w.writeHeader(header)
}

// writeRegular copies the source file into the archive.
func (w *cpioWriter) writeRegular(name string, source fs.File) error {
	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", vfs.ErrNotRegular, name)
	}

	header, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}

	header.Name = name

	err = w.writeHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w.cpio, source)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}
