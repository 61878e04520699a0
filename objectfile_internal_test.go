// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shaderfs

import (
	"io"
	"testing"

	"github.com/gamefs/shaderfs/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectFile(t *testing.T) {
	record := shader.Synthesize("textures/base/wall", "textures/base/wall.tga")

	expected, err := record.MarshalText()
	require.NoError(t, err)

	openFn := openShaderFile(record)

	file, err := openFn()
	require.NoError(t, err)

	t.Cleanup(func() { _ = file.Close() })

	info, err := file.Stat()
	require.NoError(t, err)

	assert.Equal(t, "wall", info.Name())
	assert.Equal(t, int64(len(expected)), info.Size())
	assert.False(t, info.IsDir())
	assert.True(t, info.Mode().IsRegular())
	assert.Same(t, record, info.Sys())

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, expected, content)

	// Each open yields a fresh file with its own read offset.
	second, err := openFn()
	require.NoError(t, err)

	t.Cleanup(func() { _ = second.Close() })

	secondContent, err := io.ReadAll(second)
	require.NoError(t, err)
	assert.Equal(t, expected, secondContent)
}
