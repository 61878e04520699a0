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

func TestExtensionFilterMatches(t *testing.T) {
	filter := vfs.ExtensionFilter{".tga", ".png"}

	tests := []struct {
		name     string
		expected bool
	}{
		{name: "wall.tga", expected: true},
		{name: "wall.PNG", expected: true},
		{name: "wall.Tga", expected: true},
		{name: "wall.jpg", expected: false},
		{name: "wall", expected: false},
		{name: "tga", expected: false},
		{name: ".tga", expected: false},
		{name: "textures/env/.tga", expected: false},
		{name: ".hidden.tga", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.Matches(tt.name))
		})
	}

	t.Run("empty filter", func(t *testing.T) {
		assert.True(t, vfs.ExtensionFilter{}.Matches("anything"))
		assert.True(t, vfs.ExtensionFilter{}.Matches(".tga"))
	})
}

func TestFind(t *testing.T) {
	fsys := fstest.MapFS{
		"scripts/base.shader":        {Data: []byte("")},
		"scripts/city.shader":        {Data: []byte("")},
		"scripts/readme.txt":         {Data: []byte("")},
		"scripts/sub/deep.shader":    {Data: []byte("")},
		"textures/wall.tga":          {Data: []byte("")},
		"textures/stone/.tga":        {Data: []byte("")},
		"textures/stone/floor.png":   {Data: []byte("")},
		"textures/stone/ceiling.JPG": {Data: []byte("")},
		"textures/stone/notes.md":    {Data: []byte("")},
	}

	tests := []struct {
		name     string
		dir      string
		mode     vfs.FindMode
		filter   vfs.ExtensionFilter
		expected []string
	}{
		{
			name:   "flat",
			dir:    "scripts",
			mode:   vfs.FindFlat,
			filter: vfs.ExtensionFilter{".shader"},
			expected: []string{
				"scripts/base.shader",
				"scripts/city.shader",
			},
		},
		{
			name:   "recursive",
			dir:    "textures",
			mode:   vfs.FindRecursive,
			filter: vfs.ExtensionFilter{".tga", ".png", ".jpg", ".jpeg"},
			expected: []string{
				"textures/stone/ceiling.JPG",
				"textures/stone/floor.png",
				"textures/wall.tga",
			},
		},
		{
			name: "no filter",
			dir:  "scripts",
			mode: vfs.FindFlat,
			expected: []string{
				"scripts/base.shader",
				"scripts/city.shader",
				"scripts/readme.txt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := vfs.Find(fsys, tt.dir, tt.mode, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, found)
		})
	}

	t.Run("missing dir", func(t *testing.T) {
		for _, mode := range []vfs.FindMode{vfs.FindFlat, vfs.FindRecursive} {
			_, err := vfs.Find(fsys, "void", mode, nil)
			require.ErrorIs(t, err, fs.ErrNotExist)
		}
	})
}
