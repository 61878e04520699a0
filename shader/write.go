// SPDX-FileCopyrightText: 2026 The shaderfs Authors
//
// SPDX-License-Identifier: MIT

package shader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Write writes the canonical text form of the shader to w.
//
// The output is a valid script that parses back into an equal shader.
// Directives appear in a fixed order with surface parameters sorted, so
// the form is stable for a given shader.
func Write(w io.Writer, s *Shader) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n{\n", s.Path)

	if s.EditorImage != "" {
		fmt.Fprintf(bw, "\tqer_editorimage %s\n", s.EditorImage)
	}

	if s.LightImage != "" {
		fmt.Fprintf(bw, "\tq3map_lightimage %s\n", s.LightImage)
	}

	for _, parm := range s.SurfaceParms {
		fmt.Fprintf(bw, "\tsurfaceparm %s\n", parm)
	}

	if s.Culling != CullFront {
		fmt.Fprintf(bw, "\tcull %s\n", s.Culling)
	}

	for _, stage := range s.Stages {
		fmt.Fprintf(bw, "\t{\n")

		if stage.Map != "" {
			fmt.Fprintf(bw, "\t\tmap %s\n", stage.Map)
		}

		if stage.Blend.Enabled() {
			fmt.Fprintf(
				bw, "\t\tblendfunc %s %s\n",
				stage.Blend.Src, stage.Blend.Dest,
			)
		}

		fmt.Fprintf(bw, "\t}\n")
	}

	fmt.Fprintf(bw, "}\n")

	return bw.Flush() //nolint:wrapcheck
}

// MarshalText implements [encoding.TextMarshaler] using the canonical
// text form.
func (s *Shader) MarshalText() ([]byte, error) {
	var buf bytes.Buffer

	err := Write(&buf, s)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
