// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSAddNodes(t *testing.T) {
	fsys := New()

	names := []string{
		"file",
		"dir/second",
		"deeply/nested/third",
	}

	for _, name := range names {
		err := fsys.Add(name, func() (fs.File, error) {
			return &openFile{}, nil
		})
		require.NoError(t, err, name)
	}

	for _, name := range names {
		entry, err := fsys.find(name)
		require.NoError(t, err, name)

		_, isLazy := entry.node.(lazyFile)
		assert.True(t, isLazy, name)
	}

	entry, err := fsys.find("deeply/nested")
	require.NoError(t, err)
	assert.True(t, entry.IsDir())
}

func TestFSFind(t *testing.T) {
	fsys := New()
	require.NoError(t, fsys.MkdirAll("some/dir"))

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "root",
			path: ".",
		},
		{
			name: "existing dir",
			path: "some/dir",
		},
		{
			name:        "missing",
			path:        "some/other",
			expectedErr: ErrNotExist,
		},
		{
			name:        "missing parent",
			path:        "void/dir",
			expectedErr: ErrNotExist,
		},
		{
			name:        "absolute",
			path:        "/some/dir",
			expectedErr: ErrInvalid,
		},
		{
			name:        "empty",
			path:        "",
			expectedErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fsys.find(tt.path)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDirectoryAdd(t *testing.T) {
	dir := directory{}

	err := dir.add("name", &directory{})
	require.NoError(t, err)

	err = dir.add("name", &directory{})
	require.ErrorIs(t, err, ErrExist)

	err = dir.add(".", &directory{})
	require.ErrorIs(t, err, ErrExist)
}

func TestClean(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "textures/stone", expected: "textures/stone"},
		{path: "/textures/stone", expected: "textures/stone"},
		{path: "textures//stone/", expected: "textures/stone"},
		{path: "", expected: "."},
		{path: ".", expected: "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, clean(tt.path))
		})
	}
}
