// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// FilePath is a path on the host file system. It resolves to an
// absolute path when set.
type FilePath string

func (f *FilePath) String() string {
	return string(*f)
}

func (f *FilePath) Set(s string) error {
	abs, err := AbsoluteFilePath(s)

	*f = FilePath(abs)

	return err
}

// FilePathList is a list of host file paths. Setting an empty value
// clears the list.
type FilePathList []string

func (f *FilePathList) String() string {
	return strings.Join(*f, ",")
}

func (f *FilePathList) Set(s string) error {
	if s == "" {
		*f = nil
		return nil
	}

	for _, elem := range strings.Split(s, ",") {
		abs, err := AbsoluteFilePath(elem)
		if err != nil {
			return err
		}

		*f = append(*f, abs)
	}

	return nil
}

// AbsoluteFilePath resolves the given host path to an absolute path.
func AbsoluteFilePath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyPath
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return abs, nil
}

// TreePath is a slash separated path addressing a file or directory
// inside the game tree.
type TreePath string

func (p *TreePath) String() string {
	return string(*p)
}

func (p *TreePath) Set(s string) error {
	cleaned, err := cleanTreePath(s)

	*p = TreePath(cleaned)

	return err
}

// TreePathList is a list of paths inside the game tree. Setting an
// empty value clears the list.
type TreePathList []string

func (p *TreePathList) String() string {
	return strings.Join(*p, ",")
}

func (p *TreePathList) Set(s string) error {
	if s == "" {
		*p = nil
		return nil
	}

	for _, elem := range strings.Split(s, ",") {
		cleaned, err := cleanTreePath(elem)
		if err != nil {
			return err
		}

		*p = append(*p, cleaned)
	}

	return nil
}

func cleanTreePath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyPath
	}

	cleaned := path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("%w: %s", ErrNotTreePath, name)
	}

	return cleaned, nil
}
