// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FindMode selects how [Find] descends into directories.
type FindMode int

const (
	// FindFlat enumerates only the direct entries of a directory.
	FindFlat FindMode = iota

	// FindRecursive enumerates a directory and all its subdirectories.
	FindRecursive
)

// ExtensionFilter matches file names by extension.
//
// Extensions include the leading dot and are matched case
// insensitively. An empty filter matches every name.
type ExtensionFilter []string

// Matches reports whether the extension of name is in the set.
//
// A name consisting solely of its extension, like the dot file ".tga",
// has no stem and matches no extension.
func (f ExtensionFilter) Matches(name string) bool {
	if len(f) == 0 {
		return true
	}

	ext := path.Ext(name)
	if ext == path.Base(name) {
		return false
	}

	for _, e := range f {
		if strings.EqualFold(ext, e) {
			return true
		}
	}

	return false
}

// Find enumerates the regular files under dir in fsys that pass the
// filter.
//
// Returned paths are full slash-separated paths relative to the root of
// fsys, in the directory order of the underlying file system. If dir
// does not exist, the error wraps [fs.ErrNotExist] and the caller
// decides whether that is fatal.
func Find(
	fsys fs.FS,
	dir string,
	mode FindMode,
	filter ExtensionFilter,
) ([]string, error) {
	if mode == FindRecursive {
		return findRecursive(fsys, dir, filter)
	}

	return findFlat(fsys, dir, filter)
}

func findFlat(
	fsys fs.FS,
	dir string,
	filter ExtensionFilter,
) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var found []string

	for _, entry := range entries {
		if entry.IsDir() || !filter.Matches(entry.Name()) {
			continue
		}

		found = append(found, path.Join(dir, entry.Name()))
	}

	return found, nil
}

func findRecursive(
	fsys fs.FS,
	dir string,
	filter ExtensionFilter,
) ([]string, error) {
	var found []string

	walkFn := func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !filter.Matches(entry.Name()) {
			return nil
		}

		found = append(found, name)

		return nil
	}

	err := fs.WalkDir(fsys, dir, walkFn)
	if err != nil {
		return nil, fmt.Errorf("walk dir: %w", err)
	}

	return found, nil
}
