// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shader_test

import (
	"strings"
	"testing"

	"github.com/gamefs/shaderfs/shader"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	s := &shader.Shader{
		Path:         "textures/gothic_light/ironcrosslt2",
		EditorImage:  "textures/gothic_light/ironcrosslt2.blend.tga",
		LightImage:   "textures/gothic_light/ironcrosslt2.glow.tga",
		Culling:      shader.CullNone,
		SurfaceParms: []string{"metalsteps", "nomarks"},
		Stages: []shader.Stage{
			{
				Map: "$lightmap",
			},
			{
				Map: "textures/gothic_light/ironcrosslt2.tga",
				Blend: shader.BlendFunc{
					Src:  shader.BlendDestColor,
					Dest: shader.BlendZero,
				},
			},
		},
	}

	expected := `textures/gothic_light/ironcrosslt2
{
	qer_editorimage textures/gothic_light/ironcrosslt2.blend.tga
	q3map_lightimage textures/gothic_light/ironcrosslt2.glow.tga
	surfaceparm metalsteps
	surfaceparm nomarks
	cull none
	{
		map $lightmap
	}
	{
		map textures/gothic_light/ironcrosslt2.tga
		blendfunc GL_DST_COLOR GL_ZERO
	}
}
`

	var sb strings.Builder

	err := shader.Write(&sb, s)
	require.NoError(t, err)
	assert.Equal(t, expected, sb.String())
}

func TestWriteMinimal(t *testing.T) {
	s := shader.Synthesize("textures/base/wall", "textures/base/wall.tga")

	expected := `textures/base/wall
{
	qer_editorimage textures/base/wall.tga
}
`

	var sb strings.Builder

	err := shader.Write(&sb, s)
	require.NoError(t, err)
	assert.Equal(t, expected, sb.String())
}

func TestWriteRoundTrip(t *testing.T) {
	s := &shader.Shader{
		Path:         "textures/base/pulse",
		EditorImage:  "textures/base/pulse.tga",
		Culling:      shader.CullBack,
		SurfaceParms: []string{"nolightmap", "trans"},
		Stages: []shader.Stage{
			{
				Map: "textures/base/pulse.tga",
				Blend: shader.BlendFunc{
					Src:  shader.BlendOne,
					Dest: shader.BlendOne,
				},
			},
		},
	}

	text, err := s.MarshalText()
	require.NoError(t, err)

	parsed, err := shader.Parse("roundtrip.shader", strings.NewReader(string(text)))
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	if diff := cmp.Diff(*s, parsed[0]); diff != "" {
		t.Errorf("shader changed in round trip (-want +got):\n%s", diff)
	}
}
