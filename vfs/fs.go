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

// FileOpenFunc returns an open [fs.File] or an error if opening fails.
//
// It must be safe to invoke more than once. Each invocation must yield
// a file with the same observable content.
type FileOpenFunc func() (fs.File, error)

// Adder is the write side of [FS]. Components that populate a tree
// depend on this interface instead of the concrete type.
type Adder interface {
	Add(name string, openFn FileOpenFunc) error
	MkdirAll(name string) error
}

var (
	_ fs.FS        = (*FS)(nil)
	_ fs.ReadDirFS = (*FS)(nil)
	_ Adder        = (*FS)(nil)
)

// FS is a virtual file tree of directories and lazily opened regular
// files.
//
// Regular files are registered with [FS.Add]. Missing parent
// directories are created implicitly. The zero value is not usable,
// create instances with [New].
type FS struct {
	root  directory
	files int
}

// New creates a new empty [FS].
func New() *FS {
	return &FS{
		root: make(directory),
	}
}

// Open opens the named file.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Open(name string) (fs.File, error) {
	entry, err := fsys.find(name)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	file, err := entry.node.open(entry)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	return file, nil
}

// ReadDir returns the entries of the named directory, sorted by name.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dir, isDir := file.(fs.ReadDirFile)
	if !isDir {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  ErrNotDir,
		}
	}

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  err,
		}
	}

	return entries, nil
}

// Add creates a new regular file with the given name.
//
// File content is read from the file returned by the given
// [FileOpenFunc]. Missing parent directories are created. It returns a
// [PathError] wrapping [ErrExist] if the name is already taken.
func (fsys *FS) Add(name string, openFn FileOpenFunc) error {
	if openFn == nil {
		return &PathError{
			Op:   "add",
			Path: name,
			Err:  fmt.Errorf("%w: open function is nil", ErrInvalid),
		}
	}

	err := fsys.add(name, lazyFile(openFn))
	if err != nil {
		return &PathError{
			Op:   "add",
			Path: name,
			Err:  err,
		}
	}

	fsys.files++

	return nil
}

// Mkdir creates a new directory with the given name.
//
// The parent directory must exist. It returns a [PathError] in case of
// errors.
func (fsys *FS) Mkdir(name string) error {
	err := fsys.mkdir(clean(name))
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

// MkdirAll creates a directory with the given name along with all
// necessary parents.
//
// If the directory exists already, it does nothing and returns nil. It
// returns a [PathError] in case of errors.
func (fsys *FS) MkdirAll(name string) error {
	err := fsys.mkdirAll(clean(name))
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

// Len returns the number of regular files in the tree.
func (fsys *FS) Len() int {
	return fsys.files
}

// PathInfo classifies the named path without opening the file, so
// registered open functions are not invoked.
func (fsys *FS) PathInfo(name string) PathInfo {
	entry, err := fsys.find(clean(name))
	if err != nil {
		return PathInfoMissing
	}

	if entry.IsDir() {
		return PathInfoDirectory
	}

	return PathInfoFile
}

func (fsys *FS) add(name string, n node) error {
	cleaned := clean(name)

	if !fs.ValidPath(cleaned) {
		return ErrInvalid
	}

	dirName := path.Dir(cleaned)

	err := fsys.mkdirAll(dirName)
	if err != nil {
		return err
	}

	parent, err := fsys.subDir(dirName)
	if err != nil {
		return err
	}

	return parent.add(path.Base(cleaned), n)
}

func (fsys *FS) mkdir(name string) error {
	if !fs.ValidPath(name) {
		return ErrInvalid
	}

	parent, err := fsys.subDir(path.Dir(name))
	if err != nil {
		return err
	}

	return parent.add(path.Base(name), &directory{})
}

func (fsys *FS) mkdirAll(name string) error {
	entry, err := fsys.find(name)
	if err == nil {
		if entry.IsDir() {
			return nil
		}

		return ErrNotDir
	}

	parent := path.Dir(name)
	if parent != name {
		err = fsys.mkdirAll(parent)
		if err != nil {
			return err
		}
	}

	return fsys.mkdir(name)
}

func (fsys *FS) subDir(name string) (*directory, error) {
	entry, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	dir, isDir := entry.node.(*directory)
	if !isDir {
		return nil, ErrNotDir
	}

	return dir, nil
}

func (fsys *FS) find(name string) (dirEntry, error) {
	entry := dirEntry{name: name, node: &fsys.root}

	if name == "." {
		return entry, nil
	}

	if !fs.ValidPath(name) {
		return dirEntry{}, ErrInvalid
	}

	for _, elem := range strings.Split(name, "/") {
		dir, isDir := entry.node.(*directory)
		if !isDir {
			return dirEntry{}, ErrNotExist
		}

		next, exists := (*dir)[elem]
		if !exists {
			return dirEntry{}, ErrNotExist
		}

		entry = dirEntry{name: elem, node: next}
	}

	return entry, nil
}

func clean(name string) string {
	name = path.Clean(name)
	return strings.TrimPrefix(name, "/")
}
