// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package vfs_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/gamefs/shaderfs/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFrom(backing fs.FS, name string) vfs.FileOpenFunc {
	return func() (fs.File, error) {
		return backing.Open(name)
	}
}

func TestFSConformance(t *testing.T) {
	backing := fstest.MapFS{
		"wall.tga":    {Data: []byte("wall pixels")},
		"base.shader": {Data: []byte("textures/wall {}")},
	}

	fsys := vfs.New()
	require.NoError(t,
		fsys.Add("textures/stone/wall.tga", openFrom(backing, "wall.tga")))
	require.NoError(t,
		fsys.Add("scripts/base.shader", openFrom(backing, "base.shader")))
	require.NoError(t, fsys.MkdirAll("textures/empty"))

	err := fstest.TestFS(
		fsys,
		"textures/stone/wall.tga",
		"scripts/base.shader",
		"textures/empty",
	)
	require.NoError(t, err)
}

func TestFSAdd(t *testing.T) {
	backing := fstest.MapFS{
		"wall.tga": {Data: []byte("wall pixels")},
	}

	t.Run("content", func(t *testing.T) {
		fsys := vfs.New()
		require.NoError(t,
			fsys.Add("textures/wall", openFrom(backing, "wall.tga")))

		// Lazy files open their source on each access.
		for i := 0; i < 2; i++ {
			content, err := fs.ReadFile(fsys, "textures/wall")
			require.NoError(t, err)
			assert.Equal(t, []byte("wall pixels"), content)
		}

		assert.Equal(t, 1, fsys.Len())
	})

	t.Run("lazy", func(t *testing.T) {
		opened := 0

		fsys := vfs.New()
		err := fsys.Add("textures/wall", func() (fs.File, error) {
			opened++
			return backing.Open("wall.tga")
		})
		require.NoError(t, err)
		assert.Zero(t, opened)

		_, err = fs.Stat(fsys, "textures/wall")
		require.NoError(t, err)
		assert.Equal(t, 1, opened)
	})

	t.Run("exists", func(t *testing.T) {
		fsys := vfs.New()
		require.NoError(t,
			fsys.Add("textures/wall", openFrom(backing, "wall.tga")))

		err := fsys.Add("textures/wall", openFrom(backing, "wall.tga"))
		require.ErrorIs(t, err, vfs.ErrExist)

		assert.Equal(t, 1, fsys.Len())
	})

	t.Run("file in path", func(t *testing.T) {
		fsys := vfs.New()
		require.NoError(t,
			fsys.Add("textures/wall", openFrom(backing, "wall.tga")))

		err := fsys.Add("textures/wall/sub", openFrom(backing, "wall.tga"))
		require.ErrorIs(t, err, vfs.ErrNotDir)
	})

	t.Run("nil open func", func(t *testing.T) {
		fsys := vfs.New()

		err := fsys.Add("textures/wall", nil)
		require.ErrorIs(t, err, vfs.ErrInvalid)
	})

	t.Run("escapes root", func(t *testing.T) {
		fsys := vfs.New()

		err := fsys.Add("../escaped", openFrom(backing, "wall.tga"))
		require.ErrorIs(t, err, vfs.ErrInvalid)

		// No parent directories may be left behind.
		entries, err := fsys.ReadDir(".")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestFSReadDir(t *testing.T) {
	backing := fstest.MapFS{
		"file": {Data: []byte("content")},
	}

	fsys := vfs.New()
	require.NoError(t, fsys.Add("textures/b", openFrom(backing, "file")))
	require.NoError(t, fsys.Add("textures/a", openFrom(backing, "file")))
	require.NoError(t, fsys.Add("textures/c/d", openFrom(backing, "file")))

	entries, err := fsys.ReadDir("textures")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for idx, entry := range entries {
		names[idx] = entry.Name()
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)

	_, err = fsys.ReadDir("missing")
	require.ErrorIs(t, err, vfs.ErrNotExist)
}

func TestFSPathInfo(t *testing.T) {
	backing := fstest.MapFS{
		"file": {Data: []byte("content")},
	}

	fsys := vfs.New()
	require.NoError(t, fsys.Add("textures/wall", openFrom(backing, "file")))

	tests := []struct {
		name     string
		path     string
		expected vfs.PathInfo
	}{
		{
			name:     "file",
			path:     "textures/wall",
			expected: vfs.PathInfoFile,
		},
		{
			name:     "directory",
			path:     "textures",
			expected: vfs.PathInfoDirectory,
		},
		{
			name:     "root",
			path:     ".",
			expected: vfs.PathInfoDirectory,
		},
		{
			name:     "missing",
			path:     "textures/void",
			expected: vfs.PathInfoMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fsys.PathInfo(tt.path))
		})
	}
}
