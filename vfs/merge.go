// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"errors"
	"io/fs"
	"slices"
	"strings"
)

// Merge returns a file system that layers the given file systems on top
// of each other.
//
// Open serves the first layer that contains the path. ReadDir unions
// the entries of all layers, keeping the first occurrence of each name.
func Merge(layers ...fs.FS) fs.FS {
	return mergeFS(layers)
}

var (
	_ fs.FS        = (mergeFS)(nil)
	_ fs.ReadDirFS = (mergeFS)(nil)
)

type mergeFS []fs.FS

// Open implements [fs.FS].
func (m mergeFS) Open(name string) (fs.File, error) {
	for _, layer := range m {
		file, err := layer.Open(name)
		if err == nil {
			return file, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err //nolint:wrapcheck
		}
	}

	return nil, &PathError{
		Op:   "open",
		Path: name,
		Err:  ErrNotExist,
	}
}

// ReadDir implements [fs.ReadDirFS].
func (m mergeFS) ReadDir(name string) ([]fs.DirEntry, error) {
	var (
		entries []fs.DirEntry
		found   bool
	)

	seen := make(map[string]bool)

	for _, layer := range m {
		layerEntries, err := fs.ReadDir(layer, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, err //nolint:wrapcheck
		}

		found = true

		for _, entry := range layerEntries {
			if seen[entry.Name()] {
				continue
			}

			seen[entry.Name()] = true

			entries = append(entries, entry)
		}
	}

	if !found {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  ErrNotExist,
		}
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries, nil
}
