// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shader

import (
	"slices"
	"strings"
)

// Blend factors known to the engine. Factors are stored in their
// canonical upper case OpenGL form.
const (
	BlendOne               = "GL_ONE"
	BlendZero              = "GL_ZERO"
	BlendSrcAlpha          = "GL_SRC_ALPHA"
	BlendOneMinusSrcAlpha  = "GL_ONE_MINUS_SRC_ALPHA"
	BlendDestAlpha         = "GL_DST_ALPHA"
	BlendOneMinusDestAlpha = "GL_ONE_MINUS_DST_ALPHA"
	BlendSrcColor          = "GL_SRC_COLOR"
	BlendOneMinusSrcColor  = "GL_ONE_MINUS_SRC_COLOR"
	BlendDestColor         = "GL_DST_COLOR"
	BlendOneMinusDestColor = "GL_ONE_MINUS_DST_COLOR"
)

// CullType selects which faces of a surface are culled.
type CullType int

const (
	// CullFront culls front faces. This is the engine default.
	CullFront CullType = iota

	// CullBack culls back faces.
	CullBack

	// CullNone disables culling.
	CullNone
)

// String implements [fmt.Stringer].
func (c CullType) String() string {
	switch c {
	case CullBack:
		return "back"
	case CullNone:
		return "none"
	default:
		return "front"
	}
}

// BlendFunc is the source and destination blend factor pair of a stage.
//
// The zero value means blending is disabled.
type BlendFunc struct {
	Src  string
	Dest string
}

// Enabled reports whether the stage defines both blend factors.
func (b BlendFunc) Enabled() bool {
	return b.Src != "" && b.Dest != ""
}

// Stage is a single rendering pass of a shader.
type Stage struct {
	// Map is the image drawn by the stage. Besides image paths the
	// engine placeholders $lightmap and $whiteimage occur here.
	Map string

	// Blend is how the stage is combined with the passes below it.
	Blend BlendFunc
}

// Shader is a single shader definition.
//
// Path is the identity under which the shader is addressed. It carries
// no extension. All other fields are optional.
type Shader struct {
	Path         string
	EditorImage  string
	LightImage   string
	Culling      CullType
	SurfaceParms []string
	Stages       []Stage
}

// New returns an empty shader with the given identity path.
func New(path string) *Shader {
	return &Shader{Path: path}
}

// Synthesize returns a default shader for a texture image that has no
// authored definition. The image itself serves as the editor image.
func Synthesize(path, texture string) *Shader {
	return &Shader{
		Path:        path,
		EditorImage: texture,
	}
}

// Clone returns a deep copy of the shader.
func (s *Shader) Clone() *Shader {
	clone := *s
	clone.SurfaceParms = slices.Clone(s.SurfaceParms)
	clone.Stages = slices.Clone(s.Stages)

	return &clone
}

// Texture returns the path of the image that represents the shader.
//
// The editor image wins, followed by the light image and the first
// stage that maps a real image instead of an engine placeholder. If no
// image is referenced at all, the shader path itself is returned.
func (s *Shader) Texture() string {
	if s.EditorImage != "" {
		return s.EditorImage
	}

	if s.LightImage != "" {
		return s.LightImage
	}

	for _, stage := range s.Stages {
		if stage.Map != "" && !strings.HasPrefix(stage.Map, "$") {
			return stage.Map
		}
	}

	return s.Path
}
