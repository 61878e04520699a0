// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shader_test

import (
	"testing"

	"github.com/gamefs/shaderfs/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderClone(t *testing.T) {
	original := &shader.Shader{
		Path:         "textures/base/wall",
		SurfaceParms: []string{"metalsteps"},
		Stages: []shader.Stage{
			{Map: "textures/base/wall.tga"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	original.SurfaceParms[0] = "changed"
	original.Stages[0].Map = "changed.tga"

	assert.Equal(t, "metalsteps", clone.SurfaceParms[0])
	assert.Equal(t, "textures/base/wall.tga", clone.Stages[0].Map)
}

func TestShaderTexture(t *testing.T) {
	tests := []struct {
		name     string
		shader   shader.Shader
		expected string
	}{
		{
			name: "editor image wins",
			shader: shader.Shader{
				Path:        "textures/base/wall",
				EditorImage: "editor.tga",
				LightImage:  "light.tga",
				Stages:      []shader.Stage{{Map: "stage.tga"}},
			},
			expected: "editor.tga",
		},
		{
			name: "light image second",
			shader: shader.Shader{
				Path:       "textures/base/wall",
				LightImage: "light.tga",
				Stages:     []shader.Stage{{Map: "stage.tga"}},
			},
			expected: "light.tga",
		},
		{
			name: "stage map skips placeholders",
			shader: shader.Shader{
				Path: "textures/base/wall",
				Stages: []shader.Stage{
					{Map: "$lightmap"},
					{Map: "stage.tga"},
				},
			},
			expected: "stage.tga",
		},
		{
			name: "falls back to path",
			shader: shader.Shader{
				Path:   "textures/base/wall",
				Stages: []shader.Stage{{Map: "$whiteimage"}},
			},
			expected: "textures/base/wall",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.shader.Texture())
		})
	}
}

func TestBlendFuncEnabled(t *testing.T) {
	assert.False(t, shader.BlendFunc{}.Enabled())
	assert.False(t, shader.BlendFunc{Src: shader.BlendOne}.Enabled())
	assert.True(t, shader.BlendFunc{
		Src:  shader.BlendOne,
		Dest: shader.BlendZero,
	}.Enabled())
}

func TestCullTypeString(t *testing.T) {
	assert.Equal(t, "front", shader.CullFront.String())
	assert.Equal(t, "back", shader.CullBack.String())
	assert.Equal(t, "none", shader.CullNone.String())
}
