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
)

func TestPathInfoOf(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/wall.tga": {Data: []byte("pixels")},
		"textures/irregular": {
			Mode: fs.ModeDevice,
		},
	}

	tests := []struct {
		name     string
		path     string
		expected vfs.PathInfo
	}{
		{
			name:     "file",
			path:     "textures/wall.tga",
			expected: vfs.PathInfoFile,
		},
		{
			name:     "directory",
			path:     "textures",
			expected: vfs.PathInfoDirectory,
		},
		{
			name:     "missing",
			path:     "textures/void",
			expected: vfs.PathInfoMissing,
		},
		{
			name:     "irregular",
			path:     "textures/irregular",
			expected: vfs.PathInfoMissing,
		},
		{
			name:     "invalid",
			path:     "/textures",
			expected: vfs.PathInfoMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vfs.PathInfoOf(fsys, tt.path))
		})
	}
}

func TestPathInfoString(t *testing.T) {
	assert.Equal(t, "file", vfs.PathInfoFile.String())
	assert.Equal(t, "directory", vfs.PathInfoDirectory.String())
	assert.Equal(t, "missing", vfs.PathInfoMissing.String())
}
